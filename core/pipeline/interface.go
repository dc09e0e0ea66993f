package pipeline

import "github.com/nyaya-ai/nyaya/model"

// ChunkFunc is a function that splits page text into overlapping chunks
type ChunkFunc func(text string) ([]string, error)

// EmbedFunc is a function that generates an embedding for text.
// It must be deterministic for identical text and model configuration.
type EmbedFunc func(text string) ([]float32, error)

// Pipeline combines chunking and embedding for document ingestion
type Pipeline struct {
	Chunker  ChunkFunc
	Embedder EmbedFunc
}

// NewPipeline creates a new ingestion pipeline
func NewPipeline(chunker ChunkFunc, embedder EmbedFunc) *Pipeline {
	return &Pipeline{
		Chunker:  chunker,
		Embedder: embedder,
	}
}

// ProcessPage splits one page of a source document into chunks, embeds each
// chunk and attaches the provenance metadata {source, page, chunk_index}.
func (p *Pipeline) ProcessPage(text string, source string, page int) ([]*model.Chunk, error) {
	contents, err := p.Chunker(text)
	if err != nil {
		return nil, err
	}

	chunks := make([]*model.Chunk, 0, len(contents))
	for i, content := range contents {
		embedding, err := p.Embedder(content)
		if err != nil {
			return nil, err
		}

		chunks = append(chunks, &model.Chunk{
			Content:   content,
			Embedding: embedding,
			Metadata: model.Metadata{
				"source":      source,
				"page":        page,
				"chunk_index": i,
			},
		})
	}

	return chunks, nil
}
