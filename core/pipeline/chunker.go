package pipeline

import (
	"fmt"
	"strings"
)

// OverlapChunker creates a chunker that splits text into chunks of roughly
// chunkSize characters with the given overlap between consecutive chunks.
// Chunks prefer to break at a sentence or line boundary when one exists in
// the second half of the chunk.
func OverlapChunker(chunkSize int, overlap int) ChunkFunc {
	return func(text string) ([]string, error) {
		if chunkSize <= 0 {
			return nil, fmt.Errorf("chunk size must be positive")
		}
		if overlap < 0 || overlap >= chunkSize {
			return nil, fmt.Errorf("overlap must be non-negative and smaller than chunk size")
		}

		if strings.TrimSpace(text) == "" {
			return []string{}, nil
		}

		var chunks []string
		start := 0

		for start < len(text) {
			end := start + chunkSize
			if end > len(text) {
				end = len(text)
			}

			chunk := text[start:end]

			// Break at a sentence or line boundary if one sits past the
			// midpoint, so chunks don't cut sentences in half.
			if end < len(text) {
				lastPeriod := strings.LastIndex(chunk, ".")
				lastNewline := strings.LastIndex(chunk, "\n")
				breakPoint := lastPeriod
				if lastNewline > breakPoint {
					breakPoint = lastNewline
				}

				if breakPoint > chunkSize/2 {
					chunk = text[start : start+breakPoint+1]
					end = start + breakPoint + 1
				}
			}

			trimmed := strings.TrimSpace(chunk)
			if trimmed != "" {
				chunks = append(chunks, trimmed)
			}

			if end >= len(text) {
				break
			}
			// A boundary break before the overlap point would move start
			// backwards, so clamp the next start to always advance.
			next := end - overlap
			if next <= start {
				next = start + 1
			}
			start = next
		}

		return chunks, nil
	}
}

// DefaultChunker returns the chunker used for the legal corpus:
// 1000 character chunks with 200 characters of overlap.
func DefaultChunker() ChunkFunc {
	return OverlapChunker(1000, 200)
}
