package writer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "product_embeddings.bin")
	want := map[string][]float32{
		"PROD-00001": {0.1, -0.2, 0.3},
		"PROD-00002": {1, 0, 0},
	}

	require.NoError(t, SaveEmbeddings(path, want))
	got, err := LoadEmbeddings(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadEmbeddingsMissingFile(t *testing.T) {
	_, err := LoadEmbeddings(filepath.Join(t.TempDir(), "nope.bin"))
	require.Error(t, err)
}
