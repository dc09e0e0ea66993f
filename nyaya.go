// Package nyaya answers natural-language legal questions by retrieving
// relevant passages from a fixed document corpus and synthesizing an answer
// with a language model, while preserving short-term conversational context.
package nyaya

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/nyaya-ai/nyaya/core/classify"
	"github.com/nyaya-ai/nyaya/core/confidence"
	"github.com/nyaya-ai/nyaya/core/pipeline"
	"github.com/nyaya-ai/nyaya/core/retrieval"
	"github.com/nyaya-ai/nyaya/core/synthesis"
	"github.com/nyaya-ai/nyaya/database"
	"github.com/nyaya-ai/nyaya/helper"
	"github.com/nyaya-ai/nyaya/model"
	loadSql "github.com/nyaya-ai/nyaya/sql"
)

// Assistant wires the query pipeline together: classification, retrieval
// planning, hybrid search, context assembly, answer synthesis and confidence
// scoring. Construct one at startup, inject it where needed and Close it at
// shutdown; requests share nothing but the pooled database connection.
type Assistant struct {
	DB        *helper.Database
	Documents *database.DocumentsDBHandler
	Pipeline  *pipeline.Pipeline  // Chunking and embedding pipeline
	Engine    *retrieval.Engine   // Hybrid retrieval engine
	Generator synthesis.Generator // Answer synthesizer
	// Logging
	log *slog.Logger
}

// NewAssistant creates a new Assistant with the database layer initialized.
// A pipeline (for the embedder) and a generator must be set before answering
// queries, via UseDefaultPipeline/SetPipeline and UseGeminiGenerator/SetGenerator.
func NewAssistant(config *helper.DatabaseConfiguration, embeddingDim int) (*Assistant, error) {
	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	// Initialize database
	db := helper.NewDatabase("nyaya", config, logger)
	err := loadSql.Init(db.Instance)
	if err != nil {
		return nil, helper.NewError("initialize database extensions", err)
	}

	// force=false to not reload if functions already exist
	documents, err := database.NewDocumentsDBHandler(db, embeddingDim, false)
	if err != nil {
		return nil, helper.NewError("create documents handler", err)
	}

	return &Assistant{
		DB:        db,
		Documents: documents,
		log:       logger,
	}, nil
}

// Close closes the database connection
func (a *Assistant) Close() error {
	if a.DB != nil && a.DB.Instance != nil {
		return a.DB.Instance.Close()
	}
	return nil
}

// SetPipeline sets the chunking and embedding pipeline and creates the
// retrieval engine on top of its embedder
func (a *Assistant) SetPipeline(p *pipeline.Pipeline) {
	a.Pipeline = p
	a.Engine = retrieval.NewEngine(a.Documents, p.Embedder, a.log)
}

// UseDefaultPipeline sets up the default chunking and embedding pipeline:
// 1000 character chunks with 200 overlap and the all-mpnet-base-v2 embedding
// model (768 dimensions).
func (a *Assistant) UseDefaultPipeline() error {
	chunker := pipeline.DefaultChunker()
	embedder, err := pipeline.DefaultEmbedder()
	if err != nil {
		return helper.NewError("create default embedder", err)
	}

	a.SetPipeline(pipeline.NewPipeline(chunker, embedder))
	return nil
}

// SetGenerator sets the answer synthesizer
func (a *Assistant) SetGenerator(g synthesis.Generator) {
	a.Generator = g
}

// UseGeminiGenerator sets up answer synthesis with the Gemini API
func (a *Assistant) UseGeminiGenerator(ctx context.Context, apiKey string) error {
	generator, err := synthesis.NewGeminiGenerator(ctx, apiKey, synthesis.DefaultGenerationModel)
	if err != nil {
		return helper.NewError("create gemini generator", err)
	}

	a.Generator = generator
	return nil
}

// Answer runs the full query pipeline for one request. Greetings and
// off-topic queries short-circuit with canned responses and never touch the
// datastore. All other queries go through planning, hybrid retrieval,
// context assembly and answer synthesis. External call failures abort the
// request; nothing is retried and no degraded answer is fabricated.
func (a *Assistant) Answer(ctx context.Context, query model.Query) (*model.Response, error) {
	text := strings.TrimSpace(query.Text)
	if text == "" {
		return nil, helper.NewError("query validation", model.ErrEmptyQuery)
	}

	classification := classify.Classify(text)
	a.log.Info("Classified query",
		slog.String("query_prefix", queryPrefix(text)),
		slog.String("kind", string(classification.Kind)),
		slog.String("specialization", classification.Specialization),
	)

	switch classification.Kind {
	case model.ClassificationGreeting:
		return &model.Response{
			Answer:          greetingReply(classification.Greeting),
			Sources:         []model.Source{},
			ConfidenceScore: greetingConfidence,
		}, nil
	case model.ClassificationOffTopic:
		return &model.Response{
			Answer:          offTopicReply,
			Sources:         []model.Source{},
			ConfidenceScore: offTopicConfidence,
		}, nil
	}

	if a.Engine == nil {
		return nil, helper.NewError("answer query", fmt.Errorf("pipeline with embedder not set, use SetPipeline() first"))
	}
	if a.Generator == nil {
		return nil, helper.NewError("answer query", fmt.Errorf("generator not set, use SetGenerator() first"))
	}

	request := retrieval.Plan(classification, text, query.MaxResults)
	result, err := a.Engine.Retrieve(ctx, request)
	if err != nil {
		return nil, helper.NewError("retrieve", err)
	}

	input, err := synthesis.Assemble(classification, result, query.History, text)
	if err != nil {
		return nil, helper.NewError("assemble context", err)
	}

	answer, err := a.Generator.Generate(ctx, input.Prompt)
	if err != nil {
		return nil, helper.NewError("synthesize answer", err)
	}
	answer = synthesis.NormalizeAnswer(answer)

	return &model.Response{
		Answer:          answer,
		Sources:         input.Excerpts,
		ConfidenceScore: confidence.Score(text, len(result), answer),
	}, nil
}

// IngestPages processes the page texts of one source document into chunks
// with embeddings and stores them. Returns the number of chunks inserted.
// Pages are 1-indexed in the stored metadata.
func (a *Assistant) IngestPages(source string, pages []string) (int, error) {
	if a.Pipeline == nil {
		return 0, helper.NewError("ingest document", fmt.Errorf("pipeline not set, use SetPipeline() first"))
	}
	if source == "" {
		return 0, helper.NewError("ingest document", fmt.Errorf("source is empty"))
	}

	inserted := 0
	for pageIdx, pageText := range pages {
		chunks, err := a.Pipeline.ProcessPage(pageText, source, pageIdx+1)
		if err != nil {
			return inserted, helper.NewError(fmt.Sprintf("process page %d", pageIdx+1), err)
		}

		for _, chunk := range chunks {
			if err := a.Documents.InsertChunk(chunk); err != nil {
				return inserted, helper.NewError(fmt.Sprintf("insert chunk %d of page %d", chunk.Metadata.ChunkIndex(), pageIdx+1), err)
			}
			inserted++
		}
	}

	a.log.Info("Ingested document",
		slog.String("source", source),
		slog.Int("pages", len(pages)),
		slog.Int("chunks", inserted),
	)

	return inserted, nil
}

// IngestDocument processes a document's content as a single page and stores
// the resulting chunks
func (a *Assistant) IngestDocument(doc *model.Document) (int, error) {
	if doc.Content == "" {
		return 0, helper.NewError("ingest document", fmt.Errorf("document content is empty"))
	}

	return a.IngestPages(doc.Source, []string{doc.Content})
}

// Stats returns the number of stored document chunks
func (a *Assistant) Stats() (int64, error) {
	return a.Documents.CountChunks()
}

func queryPrefix(text string) string {
	if len(text) <= 50 {
		return text
	}
	return text[:50]
}
