package embedding

import "context"

// Embedder turns text into a fixed-dimensionality vector. Dimensionality is
// constant across chunks and queries, otherwise similarity scores would be
// meaningless.
type Embedder interface {
	GetEmbedding(ctx context.Context, text string) ([]float32, error)
}
