package retrieval

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyaya-ai/nyaya/model"
)

type fakeDocumentsDB struct {
	similarityChunks []*model.Chunk
	hybridChunks     []*model.Chunk
	filterChunks     []*model.Chunk
	err              error

	similarityCalls int
	hybridCalls     int
	filterCalls     int
	lastKeywords    []string
}

func (f *fakeDocumentsDB) SelectChunksBySimilarity(embedding []float32, limit int) ([]*model.Chunk, error) {
	f.similarityCalls++
	return f.similarityChunks, f.err
}

func (f *fakeDocumentsDB) SelectChunksHybrid(embedding []float32, keywords []string, limit int) ([]*model.Chunk, error) {
	f.hybridCalls++
	f.lastKeywords = keywords
	return f.hybridChunks, f.err
}

func (f *fakeDocumentsDB) SelectChunksByContentFilter(pattern string, source string, limit int) ([]*model.Chunk, error) {
	f.filterCalls++
	return f.filterChunks, f.err
}

func testEmbedder(text string) ([]float32, error) {
	return []float32{0.1, 0.2, 0.3}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func chunk(id int, content string, similarity float64, keywordMatch bool) *model.Chunk {
	return &model.Chunk{
		ID:           id,
		Content:      content,
		Metadata:     model.Metadata{"source": "test.pdf", "page": 1},
		Similarity:   similarity,
		KeywordMatch: keywordMatch,
	}
}

func TestRetrieveStrategySelection(t *testing.T) {
	t.Run("Legal keywords in the query trigger the hybrid call", func(t *testing.T) {
		db := &fakeDocumentsDB{hybridChunks: []*model.Chunk{chunk(1, "content", 0.8, true)}}
		engine := NewEngine(db, testEmbedder, testLogger())

		result, err := engine.Retrieve(context.Background(), model.RetrievalRequest{
			QueryText:     "what is the punishment for hacking",
			EmbeddingText: "what is the punishment for hacking",
			ResultBudget:  15,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, db.hybridCalls, "Expected exactly one hybrid call")
		assert.Equal(t, 0, db.similarityCalls, "Expected no pure vector call")
		assert.Contains(t, db.lastKeywords, "hacking")
		assert.Len(t, result, 1)
	})

	t.Run("Query without legal keywords falls back to pure vector search", func(t *testing.T) {
		db := &fakeDocumentsDB{similarityChunks: []*model.Chunk{chunk(1, "content", 0.8, false)}}
		engine := NewEngine(db, testEmbedder, testLogger())

		_, err := engine.Retrieve(context.Background(), model.RetrievalRequest{
			QueryText:     "some unrelated wording",
			EmbeddingText: "some unrelated wording",
			ResultBudget:  15,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, db.similarityCalls)
		assert.Equal(t, 0, db.hybridCalls)
	})

	t.Run("Keyword list is capped at five", func(t *testing.T) {
		db := &fakeDocumentsDB{hybridChunks: []*model.Chunk{}}
		engine := NewEngine(db, testEmbedder, testLogger())

		_, err := engine.Retrieve(context.Background(), model.RetrievalRequest{
			QueryText:     "law legal section act court police complaint crime",
			EmbeddingText: "law legal section act court police complaint crime",
			ResultBudget:  15,
		})
		require.NoError(t, err)
		assert.Len(t, db.lastKeywords, 5)
	})
}

func TestRetrieveMergeAndFilter(t *testing.T) {
	t.Run("Candidates below the similarity threshold are dropped", func(t *testing.T) {
		db := &fakeDocumentsDB{hybridChunks: []*model.Chunk{
			chunk(1, "strong match", 0.52, false),
			chunk(2, "weak match", 0.20, false),
		}}
		engine := NewEngine(db, testEmbedder, testLogger())

		result, err := engine.Retrieve(context.Background(), model.RetrievalRequest{
			QueryText:     "what is section 354d",
			EmbeddingText: "what is section 354d",
			ResultBudget:  15,
		})
		require.NoError(t, err)

		require.Len(t, result, 1, "Expected the sub-threshold candidate to be dropped")
		assert.Equal(t, 1, result[0].ChunkID)
	})

	t.Run("Empty result below threshold is a valid terminal state", func(t *testing.T) {
		db := &fakeDocumentsDB{hybridChunks: []*model.Chunk{
			chunk(1, "weak", 0.10, false),
			chunk(2, "weaker", 0.05, false),
		}}
		engine := NewEngine(db, testEmbedder, testLogger())

		result, err := engine.Retrieve(context.Background(), model.RetrievalRequest{
			QueryText:     "what is section 354d",
			EmbeddingText: "what is section 354d",
			ResultBudget:  15,
		})
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Duplicate chunk IDs keep the first occurrence", func(t *testing.T) {
		db := &fakeDocumentsDB{hybridChunks: []*model.Chunk{
			chunk(1, "first occurrence", 0.80, true),
			chunk(1, "second occurrence", 0.90, false),
			chunk(2, "other", 0.70, false),
		}}
		engine := NewEngine(db, testEmbedder, testLogger())

		result, err := engine.Retrieve(context.Background(), model.RetrievalRequest{
			QueryText:     "what is section 354d",
			EmbeddingText: "what is section 354d",
			ResultBudget:  15,
		})
		require.NoError(t, err)

		require.Len(t, result, 2)
		assert.Equal(t, "first occurrence", result[0].Content)
	})

	t.Run("Keyword matches rank before higher similarity vector matches", func(t *testing.T) {
		db := &fakeDocumentsDB{hybridChunks: []*model.Chunk{
			chunk(1, "vector only", 0.95, false),
			chunk(2, "keyword hit", 0.60, true),
		}}
		engine := NewEngine(db, testEmbedder, testLogger())

		result, err := engine.Retrieve(context.Background(), model.RetrievalRequest{
			QueryText:     "what is section 354d",
			EmbeddingText: "what is section 354d",
			ResultBudget:  15,
		})
		require.NoError(t, err)

		require.Len(t, result, 2)
		assert.Equal(t, 2, result[0].ChunkID, "Expected the keyword match first")
	})

	t.Run("Result is truncated to the budget", func(t *testing.T) {
		chunks := make([]*model.Chunk, 0, 6)
		for i := 1; i <= 6; i++ {
			chunks = append(chunks, chunk(i, fmt.Sprintf("content %d", i), 0.9-float64(i)*0.01, false))
		}
		db := &fakeDocumentsDB{hybridChunks: chunks}
		engine := NewEngine(db, testEmbedder, testLogger())

		result, err := engine.Retrieve(context.Background(), model.RetrievalRequest{
			QueryText:     "what is section 354d",
			EmbeddingText: "what is section 354d",
			ResultBudget:  3,
		})
		require.NoError(t, err)
		assert.Len(t, result, 3)
	})
}

func TestRetrieveDirectoryOverride(t *testing.T) {
	request := model.RetrievalRequest{
		QueryText:     "find me a lawyer for family law",
		EmbeddingText: "Family Law lawyer advocate legal professional",
		ResultBudget:  20,
		DirectoryFilter: &model.DirectoryFilter{
			ContentPattern: "%Family Law%",
			Source:         LawyerDirectorySource,
			Limit:          10,
		},
	}

	t.Run("Directory matches fully replace vector results", func(t *testing.T) {
		db := &fakeDocumentsDB{
			hybridChunks: []*model.Chunk{chunk(1, "vector result", 0.95, true)},
			filterChunks: []*model.Chunk{chunk(2, "Adv. Meera Nair, Family Law, Kochi", 0, false)},
		}
		engine := NewEngine(db, testEmbedder, testLogger())

		result, err := engine.Retrieve(context.Background(), request)
		require.NoError(t, err)

		assert.Equal(t, 1, db.filterCalls)
		require.Len(t, result, 1, "Expected vector results to be discarded")
		assert.Equal(t, 2, result[0].ChunkID)
		assert.Equal(t, DirectoryMatchSimilarity, result[0].Similarity)
		assert.True(t, result[0].KeywordMatch)
	})

	t.Run("Vector results survive when the directory filter finds nothing", func(t *testing.T) {
		db := &fakeDocumentsDB{
			hybridChunks: []*model.Chunk{chunk(1, "vector result", 0.95, true)},
			filterChunks: []*model.Chunk{},
		}
		engine := NewEngine(db, testEmbedder, testLogger())

		result, err := engine.Retrieve(context.Background(), request)
		require.NoError(t, err)

		require.Len(t, result, 1)
		assert.Equal(t, 1, result[0].ChunkID)
	})
}

func TestRetrieveErrors(t *testing.T) {
	t.Run("Datastore failure propagates unretried", func(t *testing.T) {
		db := &fakeDocumentsDB{err: errors.New("connection refused")}
		engine := NewEngine(db, testEmbedder, testLogger())

		_, err := engine.Retrieve(context.Background(), model.RetrievalRequest{
			QueryText:     "what is section 354d",
			EmbeddingText: "what is section 354d",
			ResultBudget:  15,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrDatastoreUnavailable), "Expected the datastore sentinel in the chain")
		assert.Equal(t, 1, db.hybridCalls, "Expected a single attempt")
	})

	t.Run("Embedding failure propagates with its sentinel", func(t *testing.T) {
		db := &fakeDocumentsDB{}
		failing := func(text string) ([]float32, error) {
			return nil, errors.New("model not loaded")
		}
		engine := NewEngine(db, failing, testLogger())

		_, err := engine.Retrieve(context.Background(), model.RetrievalRequest{
			QueryText:     "what is section 354d",
			EmbeddingText: "what is section 354d",
			ResultBudget:  15,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrEmbeddingFailure))
		assert.Equal(t, 0, db.hybridCalls, "Expected no datastore call after a failed embedding")
		assert.Equal(t, 0, db.similarityCalls)
	})
}
