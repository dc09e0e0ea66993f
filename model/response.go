package model

// Source is a citation entry returned alongside the answer
type Source struct {
	Content    string  `json:"content"`
	Source     string  `json:"source"`
	Page       int     `json:"page"`
	Similarity float64 `json:"similarity"`
}

// Response is the answer to a query. Sources is non-empty only when at
// least one candidate passed the similarity threshold; Answer is never empty.
type Response struct {
	Answer          string   `json:"answer"`
	Sources         []Source `json:"sources"`
	ConfidenceScore float64  `json:"confidence_score"`
}
