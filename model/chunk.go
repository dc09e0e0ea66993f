package model

import (
	"time"

	"github.com/google/uuid"
)

// Chunk represents a bounded slice of a source document stored with its
// embedding and provenance metadata. Chunks are created by the ingestion
// pipeline and never mutated by the query pipeline.
type Chunk struct {
	ID        int       `json:"id"`
	RID       uuid.UUID `json:"rid"`
	Content   string    `json:"content"`
	Metadata  Metadata  `json:"metadata,omitempty"`
	Embedding []float32 `json:"embedding,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	// Result fields, populated by retrieval queries
	Similarity   float64 `json:"similarity,omitempty"`
	KeywordMatch bool    `json:"keyword_match,omitempty"`
}
