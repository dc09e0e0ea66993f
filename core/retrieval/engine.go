// Package retrieval plans and executes hybrid search against the document
// store and merges the results into a ranked, deduplicated candidate set.
package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/nyaya-ai/nyaya/core/classify"
	"github.com/nyaya-ai/nyaya/core/pipeline"
	"github.com/nyaya-ai/nyaya/helper"
	"github.com/nyaya-ai/nyaya/model"
)

const (
	// SimilarityThreshold is the minimum similarity a candidate must reach.
	// Candidates below it are dropped; an empty result is a valid terminal state.
	SimilarityThreshold = 0.35

	// DirectoryMatchSimilarity is the sentinel similarity assigned to pure
	// keyword hits, where vector distance carries no signal
	DirectoryMatchSimilarity = 0.9

	// maxHybridKeywords caps how many matched legal keywords go into the
	// hybrid datastore call
	maxHybridKeywords = 5
)

// DocumentsDB defines the datastore operations the engine needs
type DocumentsDB interface {
	SelectChunksBySimilarity(embedding []float32, limit int) ([]*model.Chunk, error)
	SelectChunksHybrid(embedding []float32, keywords []string, limit int) ([]*model.Chunk, error)
	SelectChunksByContentFilter(pattern string, source string, limit int) ([]*model.Chunk, error)
}

// Engine executes retrieval requests against the document store
type Engine struct {
	documents DocumentsDB
	embedder  pipeline.EmbedFunc
	log       *slog.Logger
}

// NewEngine creates a new retrieval engine
func NewEngine(documents DocumentsDB, embedder pipeline.EmbedFunc, logger *slog.Logger) *Engine {
	return &Engine{
		documents: documents,
		embedder:  embedder,
		log:       logger,
	}
}

// Retrieve executes a planned retrieval request. It always computes the query
// embedding, issues a hybrid or pure vector call depending on legal keyword
// matches in the query text, applies the directory override when the planner
// requested one, then deduplicates, thresholds and truncates the candidates.
// Datastore and embedding failures propagate unretried.
func (e *Engine) Retrieve(ctx context.Context, request model.RetrievalRequest) (model.RetrievalResult, error) {
	embedding, err := e.embedder(request.EmbeddingText)
	if err != nil {
		return nil, helper.NewError("query embedding", joinErr(model.ErrEmbeddingFailure, err))
	}

	keywords := classify.MatchedLegalKeywords(request.QueryText)
	if len(keywords) > maxHybridKeywords {
		keywords = keywords[:maxHybridKeywords]
	}

	var chunks []*model.Chunk
	if len(keywords) > 0 {
		chunks, err = e.documents.SelectChunksHybrid(embedding, keywords, request.ResultBudget)
	} else {
		chunks, err = e.documents.SelectChunksBySimilarity(embedding, request.ResultBudget)
	}
	if err != nil {
		return nil, helper.NewError("similarity search", joinErr(model.ErrDatastoreUnavailable, err))
	}

	candidates := toCandidates(chunks)

	if request.DirectoryFilter != nil {
		overridden, err := e.directoryOverride(request.DirectoryFilter)
		if err != nil {
			return nil, err
		}
		// Full replacement, not a merge: exact directory matches are strictly
		// more trustworthy than vector similarity for directory lookups.
		if len(overridden) > 0 {
			e.log.Debug("Directory filter replaced vector results",
				slog.Int("matches", len(overridden)),
				slog.String("pattern", request.DirectoryFilter.ContentPattern),
			)
			candidates = overridden
		}
	}

	result := mergeAndFilter(candidates, request.ResultBudget)

	e.log.Info("Retrieval completed",
		slog.String("query_prefix", prefix(request.QueryText, 50)),
		slog.Int("keywords", len(keywords)),
		slog.Int("candidates", len(result)),
	)

	return result, nil
}

// directoryOverride runs the mandatory keyword search for directory lookups
func (e *Engine) directoryOverride(filter *model.DirectoryFilter) ([]model.Candidate, error) {
	chunks, err := e.documents.SelectChunksByContentFilter(filter.ContentPattern, filter.Source, filter.Limit)
	if err != nil {
		return nil, helper.NewError("directory filter", joinErr(model.ErrDatastoreUnavailable, err))
	}

	candidates := make([]model.Candidate, 0, len(chunks))
	for _, chunk := range chunks {
		candidates = append(candidates, model.Candidate{
			ChunkID:      chunk.ID,
			Content:      chunk.Content,
			Metadata:     chunk.Metadata,
			Similarity:   DirectoryMatchSimilarity,
			KeywordMatch: true,
		})
	}

	return candidates, nil
}

// mergeAndFilter deduplicates by chunk ID (first occurrence wins), ranks by
// (keyword match desc, similarity desc), applies the similarity threshold and
// truncates to the result budget.
func mergeAndFilter(candidates []model.Candidate, budget int) model.RetrievalResult {
	seen := make(map[int]bool, len(candidates))
	result := make(model.RetrievalResult, 0, len(candidates))

	for _, candidate := range candidates {
		if seen[candidate.ChunkID] {
			continue
		}
		seen[candidate.ChunkID] = true

		if candidate.Similarity < SimilarityThreshold {
			continue
		}

		result = append(result, candidate)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].KeywordMatch != result[j].KeywordMatch {
			return result[i].KeywordMatch
		}
		return result[i].Similarity > result[j].Similarity
	})

	if len(result) > budget {
		result = result[:budget]
	}

	return result
}

func toCandidates(chunks []*model.Chunk) []model.Candidate {
	candidates := make([]model.Candidate, 0, len(chunks))
	for _, chunk := range chunks {
		candidates = append(candidates, model.Candidate{
			ChunkID:      chunk.ID,
			Content:      chunk.Content,
			Metadata:     chunk.Metadata,
			Similarity:   chunk.Similarity,
			KeywordMatch: chunk.KeywordMatch,
		})
	}
	return candidates
}

// joinErr ties a pipeline error kind to its underlying cause so callers can
// match the kind with errors.Is while keeping the cause in the message
func joinErr(kind error, cause error) error {
	return fmt.Errorf("%w: %w", kind, cause)
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
