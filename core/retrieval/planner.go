package retrieval

import (
	"fmt"

	"github.com/nyaya-ai/nyaya/model"
)

const (
	// LawyerDirectorySource is the corpus document holding the lawyer directory
	LawyerDirectorySource = "Lawyer.pdf"

	// Minimum result budgets per query category. Directory lookups need a
	// wider net than general questions because directory entries are short.
	lawyerLookupBudget = 20
	generalBudget      = 15

	// directoryFilterLimit caps the mandatory keyword search for directory lookups
	directoryFilterLimit = 10
)

// Plan decides the retrieval parameters for a classified query. Greetings and
// off-topic queries never reach the planner; they are short-circuited upstream.
func Plan(classification model.Classification, queryText string, maxResults int) model.RetrievalRequest {
	switch classification.Kind {
	case model.ClassificationLawyerLookup:
		if classification.Specialization != "" {
			// Specialization lookups are exact-match directory queries.
			// Vector similarity is noisy for proper-noun matching, so the
			// embedding text is a canonical phrase and an exact substring
			// filter on "<Specialization> Law" takes precedence.
			return model.RetrievalRequest{
				QueryText:     queryText,
				EmbeddingText: fmt.Sprintf("%s Law lawyer advocate legal professional", classification.Specialization),
				ResultBudget:  maxInt(maxResults, lawyerLookupBudget),
				DirectoryFilter: &model.DirectoryFilter{
					ContentPattern: fmt.Sprintf("%%%s Law%%", classification.Specialization),
					Source:         LawyerDirectorySource,
					Limit:          directoryFilterLimit,
				},
			}
		}

		return model.RetrievalRequest{
			QueryText:     queryText,
			EmbeddingText: "lawyer advocate legal professional directory",
			ResultBudget:  maxInt(maxResults, lawyerLookupBudget),
		}

	default:
		return model.RetrievalRequest{
			QueryText:     queryText,
			EmbeddingText: queryText,
			ResultBudget:  maxInt(maxResults, generalBudget),
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
