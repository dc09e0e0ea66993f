// Package synthesis assembles the structured input for answer generation and
// wraps the hosted language model behind a narrow Generator interface.
package synthesis

import (
	"fmt"
	"strings"

	"github.com/nyaya-ai/nyaya/helper"
	"github.com/nyaya-ai/nyaya/model"
)

const (
	// historyTurns is how many trailing conversation turns (2 exchanges)
	// are rendered into the prompt
	historyTurns = 4

	// Document context sizes per query category. Directory lookups need all
	// matching entries in context so the model can enumerate them.
	lawyerContextSize  = 10
	generalContextSize = 5

	// excerptLength bounds the citation excerpts returned to the caller
	excerptLength = 200

	contextSeparator = "\n\n---\n\n"
)

// citationMarkers are artifacts left in the corpus by the PDF conversion,
// stripped before content reaches the prompt
var citationMarkers = []string{"[cite_start]", "[cite_end]", "[cite:", "]"}

// SynthesisInput is the assembled input for answer generation
type SynthesisInput struct {
	Prompt   string
	Excerpts []model.Source
}

// Assemble turns the final candidate set plus recent conversation turns into
// the prompt for answer synthesis and packages the citation metadata for the
// response. The excerpts are independent of what the model actually uses.
func Assemble(classification model.Classification, result model.RetrievalResult, history []model.Turn, queryText string) (*SynthesisInput, error) {
	conversationContext, err := renderHistory(history)
	if err != nil {
		return nil, err
	}

	contextSize := generalContextSize
	if classification.Kind == model.ClassificationLawyerLookup {
		contextSize = lawyerContextSize
	}

	used := result
	if len(used) > contextSize {
		used = used[:contextSize]
	}

	contextParts := make([]string, 0, len(used))
	excerpts := make([]model.Source, 0, len(used))
	for _, candidate := range used {
		content := stripCitationMarkers(strings.TrimSpace(candidate.Content))
		contextParts = append(contextParts, content)

		excerpts = append(excerpts, model.Source{
			Content:    truncate(candidate.Content, excerptLength) + "...",
			Source:     candidate.Metadata.Source(),
			Page:       candidate.Metadata.Page(),
			Similarity: candidate.Similarity,
		})
	}
	documentContext := strings.Join(contextParts, contextSeparator)

	var prompt string
	if classification.Kind == model.ClassificationLawyerLookup {
		prompt = directoryPrompt(queryText, conversationContext, documentContext, classification.Specialization)
	} else {
		prompt = analysisPrompt(queryText, conversationContext, documentContext)
	}

	return &SynthesisInput{
		Prompt:   prompt,
		Excerpts: excerpts,
	}, nil
}

// renderHistory renders the last historyTurns turns as alternating
// "User:"/"Assistant:" blocks. Unknown roles anywhere in the history are a
// client error, including turns outside the rendered window.
func renderHistory(history []model.Turn) (string, error) {
	if len(history) == 0 {
		return "", nil
	}

	for _, turn := range history {
		if turn.Role != model.RoleUser && turn.Role != model.RoleAssistant {
			return "", helper.NewError("conversation history validation",
				fmt.Errorf("%w: unknown role %q", model.ErrMalformedHistory, turn.Role))
		}
	}

	recent := history
	if len(recent) > historyTurns {
		recent = recent[len(recent)-historyTurns:]
	}

	var sb strings.Builder
	for _, turn := range recent {
		if turn.Role == model.RoleUser {
			sb.WriteString("User: ")
		} else {
			sb.WriteString("Assistant: ")
		}
		sb.WriteString(turn.Content)
		sb.WriteString("\n\n")
	}

	return sb.String(), nil
}

func stripCitationMarkers(content string) string {
	for _, marker := range citationMarkers {
		content = strings.ReplaceAll(content, marker, "")
	}
	return content
}

// truncate cuts s to at most n runes without splitting a multi-byte character
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
