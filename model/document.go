package model

import (
	"os"
	"path/filepath"
)

// Document represents a source document to be ingested into the corpus.
// The content is chunked and embedded by the pipeline; only the resulting
// chunks are stored in the database.
type Document struct {
	Title    string   `json:"title"`
	Source   string   `json:"source"`
	Content  string   `json:"content,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// NewDocumentFromFile reads a file and creates a Document with the file content.
// The title defaults to the filename without extension, the source to the filename.
func NewDocumentFromFile(filePath string, metadata Metadata) (*Document, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	filename := filepath.Base(filePath)
	title := filename[:len(filename)-len(filepath.Ext(filename))]
	if title == "" {
		title = filename
	}

	return &Document{
		Title:    title,
		Source:   filename,
		Content:  string(content),
		Metadata: metadata,
	}, nil
}
