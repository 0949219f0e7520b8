package usecase

import (
	"math"

	"github.com/andriikh/ecomgen/internal/domain"
	"github.com/andriikh/ecomgen/internal/rng"
)

// EmbeddingGenerator produces one mock embedding per product: gaussian noise
// L2-normalized onto the unit hypersphere. The values carry no semantics; the
// contract is one stable unit vector per product identifier for a given run.
type EmbeddingGenerator struct {
	Rand *rng.Rand
}

func (g *EmbeddingGenerator) Generate(products []domain.Product) map[string][]float32 {
	embeddings := make(map[string][]float32, len(products))
	for _, p := range products {
		vec := make([]float64, domain.EmbeddingDim)
		norm := 0.0
		for i := range vec {
			vec[i] = g.Rand.NormFloat64()
			norm += vec[i] * vec[i]
		}
		norm = math.Sqrt(norm)
		out := make([]float32, domain.EmbeddingDim)
		for i := range vec {
			out[i] = float32(vec[i] / norm)
		}
		embeddings[p.ProductID] = out
	}
	return embeddings
}
