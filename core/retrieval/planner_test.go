package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyaya-ai/nyaya/model"
)

func TestPlanLawyerLookup(t *testing.T) {
	t.Run("Specialized lookup reformulates the embedding text", func(t *testing.T) {
		classification := model.Classification{
			Kind:           model.ClassificationLawyerLookup,
			Specialization: "Family",
		}
		request := Plan(classification, "find me a lawyer for family law", 5)

		assert.Equal(t, "find me a lawyer for family law", request.QueryText)
		assert.Equal(t, "Family Law lawyer advocate legal professional", request.EmbeddingText)
		assert.Equal(t, 20, request.ResultBudget, "Expected the lawyer budget floor to apply")

		require.NotNil(t, request.DirectoryFilter, "Expected a directory filter for specialized lookups")
		assert.Equal(t, "%Family Law%", request.DirectoryFilter.ContentPattern)
		assert.Equal(t, LawyerDirectorySource, request.DirectoryFilter.Source)
		assert.Equal(t, 10, request.DirectoryFilter.Limit)
	})

	t.Run("Unspecialized lookup uses the generic directory phrase", func(t *testing.T) {
		classification := model.Classification{Kind: model.ClassificationLawyerLookup}
		request := Plan(classification, "i need a lawyer", 0)

		assert.Equal(t, "lawyer advocate legal professional directory", request.EmbeddingText)
		assert.Equal(t, 20, request.ResultBudget)
		assert.Nil(t, request.DirectoryFilter)
	})

	t.Run("Requested budget above the floor is kept", func(t *testing.T) {
		classification := model.Classification{Kind: model.ClassificationLawyerLookup}
		request := Plan(classification, "i need a lawyer", 30)
		assert.Equal(t, 30, request.ResultBudget)
	})
}

func TestPlanGeneral(t *testing.T) {
	t.Run("General query embeds the raw text", func(t *testing.T) {
		classification := model.Classification{Kind: model.ClassificationGeneral}
		request := Plan(classification, "what is section 354d", 5)

		assert.Equal(t, "what is section 354d", request.QueryText)
		assert.Equal(t, "what is section 354d", request.EmbeddingText)
		assert.Equal(t, 15, request.ResultBudget, "Expected the general budget floor to apply")
		assert.Nil(t, request.DirectoryFilter)
	})

	t.Run("Requested budget above the floor is kept", func(t *testing.T) {
		classification := model.Classification{Kind: model.ClassificationGeneral}
		request := Plan(classification, "what is section 354d", 25)
		assert.Equal(t, 25, request.ResultBudget)
	})
}
