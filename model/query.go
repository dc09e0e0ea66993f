package model

// Role identifies the author of a conversation turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message in the conversation history
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Query is a single incoming question with optional result limit and
// short-term conversation history. Transient, constructed per request.
type Query struct {
	Text       string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
	History    []Turn `json:"conversation_history,omitempty"`
}
