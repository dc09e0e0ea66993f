// Bulk-loads page texts into the corpus. Expects a directory of .txt files,
// one file per source document with pages separated by form feed characters,
// as produced by a PDF text extractor.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nyaya-ai/nyaya"
	"github.com/nyaya-ai/nyaya/core/pipeline"
	"github.com/nyaya-ai/nyaya/helper"
)

func main() {
	dir := flag.String("dir", "./corpus", "directory of extracted page texts")
	flag.Parse()

	_ = godotenv.Load()

	dbConfig, err := helper.NewDatabaseConfiguration()
	if err != nil {
		log.Fatalf("Failed to read database configuration: %v", err)
	}

	assistant, err := nyaya.NewAssistant(dbConfig, pipeline.EmbeddingDimension)
	if err != nil {
		log.Fatalf("Failed to create assistant: %v", err)
	}
	defer assistant.Close()

	if err := assistant.UseDefaultPipeline(); err != nil {
		log.Fatalf("Failed to set up pipeline: %v", err)
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("Failed to read corpus directory: %v", err)
	}

	total := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		content, err := os.ReadFile(filepath.Join(*dir, entry.Name()))
		if err != nil {
			log.Fatalf("Failed to read %s: %v", entry.Name(), err)
		}

		// Source name keeps the original document extension convention
		source := strings.TrimSuffix(entry.Name(), ".txt") + ".pdf"
		pages := strings.Split(string(content), "\f")

		// Re-ingesting a source replaces its chunks
		if _, err := assistant.Documents.DeleteChunksBySource(source); err != nil {
			log.Fatalf("Failed to clear existing chunks for %s: %v", source, err)
		}

		inserted, err := assistant.IngestPages(source, pages)
		if err != nil {
			log.Fatalf("Failed to ingest %s: %v", source, err)
		}

		fmt.Printf("%s: %d chunks from %d pages\n", source, inserted, len(pages))
		total += inserted
	}

	count, err := assistant.Stats()
	if err != nil {
		log.Fatalf("Failed to count chunks: %v", err)
	}
	fmt.Printf("Inserted %d chunks, corpus now holds %d\n", total, count)
}
