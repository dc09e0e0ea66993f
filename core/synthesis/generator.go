package synthesis

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nyaya-ai/nyaya/helper"
	"github.com/nyaya-ai/nyaya/model"
)

// DefaultGenerationModel is the Gemini model used for answer synthesis
const DefaultGenerationModel = "gemini-2.5-flash"

// Generator produces prose from an assembled prompt. It may fail or return
// empty text; both are propagated failures, never silently substituted.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator generates answers with the Gemini API
type GeminiGenerator struct {
	client    *genai.Client
	modelName string
}

// NewGeminiGenerator creates a generator backed by the Gemini API.
// An empty modelName selects DefaultGenerationModel.
func NewGeminiGenerator(ctx context.Context, apiKey string, modelName string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, helper.NewError("generator configuration", fmt.Errorf("gemini api key is empty"))
	}
	if modelName == "" {
		modelName = DefaultGenerationModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, helper.NewError("create gemini client", err)
	}

	return &GeminiGenerator{
		client:    client,
		modelName: modelName,
	}, nil
}

// Generate calls the model with the assembled prompt. Empty model output is
// a synthesis failure; the caller must not substitute its own answer.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", helper.NewError("generate content", fmt.Errorf("%w: %w", model.ErrSynthesisFailure, err))
	}

	answer := strings.TrimSpace(response.Text())
	if answer == "" {
		return "", helper.NewError("generate content", fmt.Errorf("%w: model returned empty text", model.ErrSynthesisFailure))
	}

	return answer, nil
}
