package model

// Candidate is a retrieval hit. Similarity is cosine-derived
// (1 - cosine distance) for vector hits and a fixed sentinel for pure
// keyword hits, where vector distance carries no signal.
type Candidate struct {
	ChunkID      int      `json:"chunk_id"`
	Content      string   `json:"content"`
	Metadata     Metadata `json:"metadata"`
	Similarity   float64  `json:"similarity"`
	KeywordMatch bool     `json:"keyword_match"`
}

// RetrievalResult is the final candidate set, ranked by
// (keyword match desc, similarity desc) and deduplicated by chunk ID.
// An empty result is a valid terminal state, not an error.
type RetrievalResult []Candidate
