package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/nyaya-ai/nyaya"
	"github.com/nyaya-ai/nyaya/core/pipeline"
	"github.com/nyaya-ai/nyaya/helper"
	"github.com/nyaya-ai/nyaya/model"
)

const sampleContent = `Cyber stalking is punishable under Section 354D of the Indian Penal Code.
It covers monitoring the use by a person of the internet, email or any other
form of electronic communication. A first conviction carries imprisonment of
up to three years and a fine.

Section 66E of the IT Act punishes the violation of privacy: capturing,
publishing or transmitting the image of a private area of any person without
consent. The punishment is imprisonment up to three years or a fine up to two
lakh rupees, or both.

Complaints can be filed online at cybercrime.gov.in or at the nearest
cybercrime police station. The national cyber crime helpline is 1930.`

func main() {
	// Load .env if present; the variables may also come from the environment
	_ = godotenv.Load()

	// Start a test PostgreSQL container with pgvector
	teardown, dbPort, err := helper.MustStartPostgresContainer()
	if err != nil {
		log.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer teardown(context.Background())

	dbConfig := &helper.DatabaseConfiguration{
		Host:     "localhost",
		Port:     dbPort,
		Database: "database",
		Username: "user",
		Password: "password",
		Schema:   "public",
		SSLMode:  "disable",
	}

	assistant, err := nyaya.NewAssistant(dbConfig, pipeline.EmbeddingDimension)
	if err != nil {
		log.Fatalf("Failed to create assistant: %v", err)
	}
	defer assistant.Close()

	// Set up the default pipeline (overlap chunking + embeddings)
	if err := assistant.UseDefaultPipeline(); err != nil {
		log.Fatalf("Failed to set up pipeline: %v", err)
	}

	// Answer synthesis needs a Gemini API key
	ctx := context.Background()
	if err := assistant.UseGeminiGenerator(ctx, os.Getenv("GEMINI_API_KEY")); err != nil {
		log.Fatalf("Failed to set up generator: %v", err)
	}

	// Ingest a small sample corpus
	inserted, err := assistant.IngestDocument(&model.Document{
		Title:   "Cybercrime Offences",
		Source:  "cybercrime_offences.pdf",
		Content: sampleContent,
	})
	if err != nil {
		log.Fatalf("Failed to ingest document: %v", err)
	}
	fmt.Printf("Ingested %d chunks\n\n", inserted)

	// Ask a question
	response, err := assistant.Answer(ctx, model.Query{
		Text: "what is the punishment for cyber stalking under section 354D",
	})
	if err != nil {
		log.Fatalf("Failed to answer query: %v", err)
	}

	fmt.Println("Answer:")
	fmt.Println(response.Answer)
	fmt.Printf("\nConfidence: %.2f\n", response.ConfidenceScore)
	for i, source := range response.Sources {
		fmt.Printf("[%d] %s (page %d, similarity %.3f)\n", i+1, source.Source, source.Page, source.Similarity)
	}
}
