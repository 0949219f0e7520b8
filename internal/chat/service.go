// Package chat implements the catalog search demo: case-insensitive substring
// matching over name, category and description, returned in table order.
package chat

import (
	"strings"

	"github.com/andriikh/ecomgen/internal/domain"
)

// MaxResults bounds how many matches a query returns.
const MaxResults = 5

type Service struct {
	products []domain.Product
}

func NewService(products []domain.Product) *Service {
	return &Service{products: products}
}

// Empty reports whether there is no catalog to search.
func (s *Service) Empty() bool { return len(s.products) == 0 }

// Size returns the number of loaded products.
func (s *Service) Size() int { return len(s.products) }

// Search returns up to MaxResults products whose name, category or
// description contains the query, ignoring case. No ranking is applied
// beyond catalog order.
func (s *Service) Search(query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []domain.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
			if len(out) == MaxResults {
				break
			}
		}
	}
	return out
}
