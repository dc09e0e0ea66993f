package database

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"github.com/nyaya-ai/nyaya/helper"
	"github.com/nyaya-ai/nyaya/model"
	loadSql "github.com/nyaya-ai/nyaya/sql"
)

// DocumentsDBHandlerFunctions defines the interface for document chunk database operations.
type DocumentsDBHandlerFunctions interface {
	InsertChunk(chunk *model.Chunk) error
	SelectChunksBySimilarity(embedding []float32, limit int) ([]*model.Chunk, error)
	SelectChunksHybrid(embedding []float32, keywords []string, limit int) ([]*model.Chunk, error)
	SelectChunksByContentFilter(pattern string, source string, limit int) ([]*model.Chunk, error)
	CountChunks() (int64, error)
	DeleteChunksBySource(source string) (int64, error)
}

// DocumentsDBHandler handles document chunk database operations
type DocumentsDBHandler struct {
	db *helper.Database
}

// NewDocumentsDBHandler creates a new documents database handler.
// It loads the document-related SQL functions and creates the table with the
// given embedding dimension. If force is true, the SQL functions are reloaded
// even if they already exist.
func NewDocumentsDBHandler(db *helper.Database, embeddingDim int, force bool) (*DocumentsDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	documentsDbHandler := &DocumentsDBHandler{
		db: db,
	}

	err := loadSql.LoadDocumentsSql(documentsDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load documents sql", err)
	}

	err = documentsDbHandler.CreateTable(embeddingDim)
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized DocumentsDBHandler")

	return documentsDbHandler, nil
}

// CreateTable creates the 'documents' table in the database.
// If the table already exists, it does not create it again.
func (h *DocumentsDBHandler) CreateTable(embeddingDim int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_documents($1);`, embeddingDim)
	if err != nil {
		return helper.NewError("init documents table", err)
	}

	h.db.Logger.Info("Checked/created table documents")

	return nil
}

// InsertChunk inserts a new document chunk with its embedding
func (h *DocumentsDBHandler) InsertChunk(chunk *model.Chunk) error {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM insert_document($1, $2, $3)`,
		chunk.Content,
		chunk.Metadata,
		pgvector.NewVector(chunk.Embedding),
	)

	err := row.Scan(
		&chunk.ID,
		&chunk.RID,
		&chunk.Content,
		&chunk.Metadata,
		&chunk.CreatedAt,
	)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// SelectChunksBySimilarity performs pure nearest-neighbor search ordered by
// cosine distance ascending. Similarity on the returned chunks is
// 1 - cosine distance.
func (h *DocumentsDBHandler) SelectChunksBySimilarity(embedding []float32, limit int) ([]*model.Chunk, error) {
	rows, err := h.db.Instance.Query(
		`SELECT * FROM select_documents_by_similarity($1, $2)`,
		pgvector.NewVector(embedding),
		limit,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var results []*model.Chunk
	for rows.Next() {
		chunk := &model.Chunk{}
		err := rows.Scan(
			&chunk.ID,
			&chunk.RID,
			&chunk.Content,
			&chunk.Metadata,
			&chunk.Similarity,
		)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		results = append(results, chunk)
	}

	err = rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return results, nil
}

// SelectChunksHybrid performs a single ranked hybrid query: chunks whose
// content contains any of the keywords rank first, ties broken by vector
// distance ascending. The ranking happens at the datastore level.
func (h *DocumentsDBHandler) SelectChunksHybrid(embedding []float32, keywords []string, limit int) ([]*model.Chunk, error) {
	rows, err := h.db.Instance.Query(
		`SELECT * FROM select_documents_hybrid($1, $2, $3)`,
		pgvector.NewVector(embedding),
		pq.Array(keywords),
		limit,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var results []*model.Chunk
	for rows.Next() {
		chunk := &model.Chunk{}
		err := rows.Scan(
			&chunk.ID,
			&chunk.RID,
			&chunk.Content,
			&chunk.Metadata,
			&chunk.Similarity,
			&chunk.KeywordMatch,
		)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		results = append(results, chunk)
	}

	err = rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return results, nil
}

// SelectChunksByContentFilter performs an exact content substring filter,
// optionally restricted to a single source document. Source may be empty to
// search all sources. Rows come back without similarity; the caller assigns
// the keyword sentinel.
func (h *DocumentsDBHandler) SelectChunksByContentFilter(pattern string, source string, limit int) ([]*model.Chunk, error) {
	var sourceParam interface{}
	if source != "" {
		sourceParam = source
	}

	rows, err := h.db.Instance.Query(
		`SELECT * FROM select_documents_by_content_filter($1, $2, $3)`,
		pattern,
		sourceParam,
		limit,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var results []*model.Chunk
	for rows.Next() {
		chunk := &model.Chunk{}
		err := rows.Scan(
			&chunk.ID,
			&chunk.RID,
			&chunk.Content,
			&chunk.Metadata,
		)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		results = append(results, chunk)
	}

	err = rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return results, nil
}

// CountChunks returns the total number of stored chunks
func (h *DocumentsDBHandler) CountChunks() (int64, error) {
	var count int64
	err := h.db.Instance.QueryRow(`SELECT count_documents()`).Scan(&count)
	if err != nil {
		return 0, helper.NewError("scan", err)
	}
	return count, nil
}

// DeleteChunksBySource deletes all chunks of a source document and returns
// the number of deleted rows. Used when a source is re-ingested.
func (h *DocumentsDBHandler) DeleteChunksBySource(source string) (int64, error) {
	var deleted int64
	err := h.db.Instance.QueryRow(`SELECT delete_documents_by_source($1)`, source).Scan(&deleted)
	if err != nil {
		return 0, helper.NewError("scan", err)
	}
	return deleted, nil
}
