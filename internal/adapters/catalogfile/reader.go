// Package catalogfile reads a generated products.csv back into memory for the
// chat demo. Only the columns the demo searches and displays are required.
package catalogfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/andriikh/ecomgen/internal/domain"
)

// Load parses products.csv, tolerating extra or reordered columns by mapping
// the header by name. The name, category, description and final_price columns
// must be present.
func Load(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open product catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, required := range []string{"name", "category", "description", "final_price"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%s is missing the %q column", path, required)
		}
	}

	products := make([]domain.Product, 0, len(records)-1)
	for _, rec := range records[1:] {
		price, err := strconv.ParseFloat(rec[col["final_price"]], 64)
		if err != nil {
			return nil, fmt.Errorf("parse final_price %q: %w", rec[col["final_price"]], err)
		}
		p := domain.Product{
			Name:        rec[col["name"]],
			Category:    rec[col["category"]],
			Description: rec[col["description"]],
			FinalPrice:  price,
		}
		if i, ok := col["product_id"]; ok {
			p.ProductID = rec[i]
		}
		products = append(products, p)
	}
	return products, nil
}
