package chat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriikh/ecomgen/internal/domain"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{ProductID: "PROD-00001", Name: "SoundMax Pro Headphones", Category: "Electronics", Description: "Wireless over-ear headphones"},
		{ProductID: "PROD-00002", Name: "UrbanStyle Classic Jeans", Category: "Clothing", Description: "Everyday denim"},
		{ProductID: "PROD-00003", Name: "ChefMaster Ultra Cookware", Category: "Home & Kitchen", Description: "Non-stick pan set"},
		{ProductID: "PROD-00004", Name: "TechPro Elite Laptops", Category: "Electronics", Description: "Lightweight workstation"},
	}
}

func TestSearchMatchesAllFields(t *testing.T) {
	s := NewService(testCatalog())

	byName := s.Search("soundmax")
	require.Len(t, byName, 1)
	assert.Equal(t, "PROD-00001", byName[0].ProductID)

	byCategory := s.Search("electronics")
	require.Len(t, byCategory, 2)
	assert.Equal(t, "PROD-00001", byCategory[0].ProductID)
	assert.Equal(t, "PROD-00004", byCategory[1].ProductID)

	byDescription := s.Search("DENIM")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "PROD-00002", byDescription[0].ProductID)
}

func TestSearchEmptyQuery(t *testing.T) {
	s := NewService(testCatalog())
	assert.Nil(t, s.Search(""))
	assert.Nil(t, s.Search("   "))
	assert.Empty(t, s.Search("no such product"))
}

func TestSearchCapsResults(t *testing.T) {
	products := make([]domain.Product, 0, 12)
	for i := 0; i < 12; i++ {
		products = append(products, domain.Product{
			ProductID: fmt.Sprintf("PROD-%05d", i+1),
			Name:      fmt.Sprintf("Widget %d", i+1),
			Category:  "Electronics",
		})
	}
	s := NewService(products)

	out := s.Search("widget")
	require.Len(t, out, MaxResults)
	// catalog order, not ranking
	assert.Equal(t, "PROD-00001", out[0].ProductID)
	assert.Equal(t, "PROD-00005", out[4].ProductID)
}

func TestEmptyService(t *testing.T) {
	s := NewService(nil)
	assert.True(t, s.Empty())
	assert.Zero(t, s.Size())
	assert.Empty(t, s.Search("anything"))
}
