package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriikh/ecomgen/internal/domain"
	"github.com/andriikh/ecomgen/internal/rng"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestCatalogInvariants(t *testing.T) {
	g := &CatalogGenerator{Rand: rng.New(42)}
	products := g.Generate(200, testNow)
	require.Len(t, products, 200)

	for i, p := range products {
		assert.Equal(t, fmt.Sprintf("PROD-%05d", i+1), p.ProductID)

		info, ok := domain.Categories[p.Category]
		require.True(t, ok, "unknown category %q", p.Category)
		assert.Contains(t, info.Subcategories, p.Subcategory)
		assert.Contains(t, info.Brands, p.Brand)

		assert.GreaterOrEqual(t, p.DiscountPercent, 0)
		assert.LessOrEqual(t, p.DiscountPercent, 30)
		assert.Equal(t, Round2(p.BasePrice*(1-float64(p.DiscountPercent)/100)), p.FinalPrice)
		assert.LessOrEqual(t, p.FinalPrice, p.BasePrice)
		assert.GreaterOrEqual(t, p.BasePrice, info.PriceMin)
		assert.LessOrEqual(t, p.BasePrice, info.PriceMax)

		assert.GreaterOrEqual(t, p.StockQuantity, 0)
		assert.LessOrEqual(t, p.StockQuantity, 500)
		assert.Equal(t, p.StockQuantity > 0, p.InStock)

		assert.GreaterOrEqual(t, p.Rating, 3.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		if p.Rating <= 4.0 {
			assert.LessOrEqual(t, p.NumReviews, 100)
		}

		require.NotEmpty(t, p.Attributes)
		assert.LessOrEqual(t, len(p.Attributes), 3)
		for key := range p.Attributes {
			assert.Contains(t, info.Attributes, key, "attribute outside category vocabulary")
		}

		assert.Contains(t, p.Tags, p.Category)
		assert.Contains(t, p.Tags, p.Subcategory)
		assert.Contains(t, p.Tags, p.Brand)
		seen := map[string]bool{}
		for _, tag := range p.Tags {
			assert.False(t, seen[tag], "duplicate tag %q", tag)
			seen[tag] = true
		}

		assert.False(t, p.UpdatedDate.Before(p.CreatedDate), "updated_date before created_date")
		assert.False(t, p.CreatedDate.After(testNow.AddDate(0, -6, 0)))
		assert.Equal(t, "USD", p.Currency)
	}
}

func TestCatalogDiscountValues(t *testing.T) {
	g := &CatalogGenerator{Rand: rng.New(7)}
	valid := map[int]bool{0: true, 5: true, 10: true, 15: true, 20: true, 25: true, 30: true}
	discounted := 0
	products := g.Generate(500, testNow)
	for _, p := range products {
		require.True(t, valid[p.DiscountPercent], "unexpected discount %d", p.DiscountPercent)
		if p.DiscountPercent > 0 {
			discounted++
		}
	}
	// 25% discount probability, with generous slack
	assert.Greater(t, discounted, 50)
	assert.Less(t, discounted, 250)
}

func TestCatalogDeterministic(t *testing.T) {
	a := (&CatalogGenerator{Rand: rng.New(42)}).Generate(50, testNow)
	b := (&CatalogGenerator{Rand: rng.New(42)}).Generate(50, testNow)
	require.Equal(t, a, b)
}
