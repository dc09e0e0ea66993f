package pipeline

import (
	"fmt"

	"github.com/knights-analytics/hugot"

	"github.com/nyaya-ai/nyaya/helper"
)

// EmbeddingDimension is the output dimension of the default embedding model
const EmbeddingDimension = 768

// DefaultEmbedder creates an embedder using the all-mpnet-base-v2 sentence
// transformer, the model the legal corpus was embedded with. Embeddings are
// 768-dimensional.
func DefaultEmbedder() (EmbedFunc, error) {
	modelName := "sentence-transformers/all-mpnet-base-v2"
	modelPath, err := helper.PrepareModel(modelName, "onnx/model.onnx")
	if err != nil {
		return nil, err
	}

	// Initialize hugot session with Go backend
	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create hugot session: %w", err)
	}

	config := hugot.FeatureExtractionConfig{
		ModelPath: modelPath,
		Name:      "embedder-pipeline",
	}
	sentencePipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			return nil, fmt.Errorf("failed to create sentence pipeline: %w (cleanup error: %v)", err, destroyErr)
		}
		return nil, fmt.Errorf("failed to create sentence pipeline: %w", err)
	}

	return func(text string) ([]float32, error) {
		result, err := sentencePipeline.RunPipeline([]string{text})
		if err != nil {
			return nil, fmt.Errorf("failed to generate embedding: %w", err)
		}

		if len(result.Embeddings) == 0 {
			return nil, fmt.Errorf("no embedding generated")
		}

		return result.Embeddings[0], nil
	}, nil
}
