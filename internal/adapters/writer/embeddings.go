package writer

import (
	"encoding/gob"
	"fmt"
	"os"
)

// SaveEmbeddings writes the product_id -> vector map as a single gob blob so
// consumers can load it back into memory in one call.
func SaveEmbeddings(path string, embeddings map[string][]float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := gob.NewEncoder(f).Encode(embeddings); err != nil {
		f.Close()
		return fmt.Errorf("encode embeddings: %w", err)
	}
	return f.Close()
}

// LoadEmbeddings reads a blob written by SaveEmbeddings.
func LoadEmbeddings(path string) (map[string][]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var embeddings map[string][]float32
	if err := gob.NewDecoder(f).Decode(&embeddings); err != nil {
		return nil, fmt.Errorf("decode embeddings: %w", err)
	}
	return embeddings, nil
}
