package model

// DirectoryFilter describes a mandatory exact-match content filter against
// the lawyer directory source. When the filter yields at least one row its
// results replace the vector-ranked results entirely.
type DirectoryFilter struct {
	ContentPattern string `json:"content_pattern"`
	Source         string `json:"source"`
	Limit          int    `json:"limit"`
}

// RetrievalRequest carries the retrieval parameters decided by the planner
type RetrievalRequest struct {
	// QueryText is the raw user text, used for legal keyword detection
	QueryText string `json:"query_text"`
	// EmbeddingText is the text to embed; may be a reformulated canonical
	// phrase for directory lookups
	EmbeddingText string `json:"embedding_text"`
	ResultBudget  int    `json:"result_budget"`
	// DirectoryFilter is nil unless a mandatory keyword search is required
	DirectoryFilter *DirectoryFilter `json:"directory_filter,omitempty"`
}
