package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andriikh/ecomgen/internal/domain"
)

// JSON writes the JSON variants consumed by the RAG-oriented course modules.
type JSON struct {
	Dir string
}

func NewJSON(dir string) *JSON { return &JSON{Dir: dir} }

func (w *JSON) WriteProducts(ps []domain.Product) (string, error) {
	return w.write("products.json", ps)
}

func (w *JSON) WriteKB(articles []domain.KBArticle) (string, error) {
	return w.write("knowledge_base.json", articles)
}

func (w *JSON) WriteManifest(m domain.Manifest) (string, error) {
	return w.write("manifest.json", m)
}

func (w *JSON) write(name string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}
