package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/nyaya-ai/nyaya/helper"
)

// Metadata represents JSONB metadata stored in PostgreSQL.
// For corpus chunks it carries the provenance keys source, page and chunk_index.
type Metadata map[string]interface{}

// Value implements the driver.Valuer interface for database storage
func (m Metadata) Value() (driver.Value, error) {
	return m.Marshal()
}

// Scan implements the sql.Scanner interface for database retrieval
func (m *Metadata) Scan(value interface{}) error {
	return m.Unmarshal(value)
}

// Marshal converts Metadata to JSON bytes
func (m Metadata) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

// Unmarshal converts JSON bytes or Metadata to Metadata
func (m *Metadata) Unmarshal(value interface{}) error {
	if value == nil {
		*m = Metadata{}
		return nil
	}

	if s, ok := value.(Metadata); ok {
		*m = Metadata(s)
		return nil
	}

	b, ok := value.([]byte)
	if !ok {
		return helper.NewError("byte assertion", errors.New("type assertion to []byte failed"))
	}

	return json.Unmarshal(b, m)
}

// Source returns the source document name, or "Unknown" if not set
func (m Metadata) Source() string {
	if s, ok := m["source"].(string); ok && s != "" {
		return s
	}
	return "Unknown"
}

// Page returns the page number, or 0 if not set.
// JSON numbers unmarshal as float64, so both int and float64 are accepted.
func (m Metadata) Page() int {
	switch p := m["page"].(type) {
	case float64:
		return int(p)
	case int:
		return p
	}
	return 0
}

// ChunkIndex returns the chunk index within the page, or 0 if not set
func (m Metadata) ChunkIndex() int {
	switch c := m["chunk_index"].(type) {
	case float64:
		return int(c)
	case int:
		return c
	}
	return 0
}
