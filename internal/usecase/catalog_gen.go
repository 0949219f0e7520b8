package usecase

import (
	"fmt"
	"math"
	"time"

	"github.com/andriikh/ecomgen/internal/domain"
	"github.com/andriikh/ecomgen/internal/fake"
	"github.com/andriikh/ecomgen/internal/rng"
)

var nameModifiers = []string{
	"Premium", "Professional", "Classic", "Modern", "Essential",
	"Pro", "Plus", "Ultra", "Elite", "Standard",
}

var discountSteps = []int{5, 10, 15, 20, 25, 30}

var marketingTags = []string{"bestseller", "new", "trending", "sale", "featured", "eco-friendly"}

var sizeOptions = []string{"S", "M", "L", "XL", "XXL"}

var storageOptions = []string{"256GB", "512GB", "1TB", "2TB"}

var ramOptions = []string{"8GB", "16GB", "32GB", "64GB"}

// CatalogGenerator produces the product table from the category taxonomy.
// It has no upstream dependencies; every other table samples from its output.
type CatalogGenerator struct {
	Rand *rng.Rand
}

func (g *CatalogGenerator) Generate(n int, now time.Time) []domain.Product {
	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		category := rng.Choice(g.Rand, domain.CategoryOrder)
		info := domain.Categories[category]

		subcategory := rng.Choice(g.Rand, info.Subcategories)
		brand := rng.Choice(g.Rand, info.Brands)
		name := brand + " " + rng.Choice(g.Rand, nameModifiers) + " " + subcategory

		basePrice := Round2(g.Rand.FloatBetween(info.PriceMin, info.PriceMax))
		discount := 0
		if g.Rand.Bool(0.25) {
			discount = rng.Choice(g.Rand, discountSteps)
		}
		finalPrice := Round2(basePrice * (1 - float64(discount)/100))

		attrs := make(map[string]string, 3)
		count := 3
		if len(info.Attributes) < count {
			count = len(info.Attributes)
		}
		for _, attr := range rng.Sample(g.Rand, info.Attributes, count) {
			attrs[attr] = g.attributeValue(attr)
		}

		description := fmt.Sprintf("%s - %s. %s", name, fake.CatchPhrase(g.Rand), fake.Sentence(g.Rand, 15))

		stock := g.Rand.IntBetween(0, 500)
		rating := math.Round(g.Rand.FloatBetween(3.0, 5.0)*10) / 10
		numReviews := g.Rand.IntBetween(0, 100)
		if rating > 4.0 {
			numReviews = g.Rand.IntBetween(0, 1000)
		}

		tags := []string{category, subcategory, brand}
		for _, t := range rng.Sample(g.Rand, marketingTags, g.Rand.IntBetween(0, 3)) {
			tags = appendUnique(tags, t)
		}

		// Created between 2 years and 6 months ago, updated within the last
		// 6 months, so updated_date >= created_date holds by construction.
		created := g.Rand.DateBetween(now.AddDate(-2, 0, 0), now.AddDate(0, -6, 0))
		updated := g.Rand.DateBetween(now.AddDate(0, -6, 0), now)

		products = append(products, domain.Product{
			ProductID:       fmt.Sprintf("PROD-%05d", i+1),
			Name:            name,
			Category:        category,
			Subcategory:     subcategory,
			Brand:           brand,
			BasePrice:       basePrice,
			DiscountPercent: discount,
			FinalPrice:      finalPrice,
			Currency:        "USD",
			StockQuantity:   stock,
			InStock:         stock > 0,
			Rating:          rating,
			NumReviews:      numReviews,
			Description:     description,
			Attributes:      attrs,
			Tags:            tags,
			CreatedDate:     created,
			UpdatedDate:     updated,
		})
	}
	return products
}

// attributeValue picks a value appropriate for the attribute name: enumerated
// sets for sizes and capacities, a formatted decimal for weight, a filler word
// otherwise.
func (g *CatalogGenerator) attributeValue(attr string) string {
	switch attr {
	case "Size":
		return rng.Choice(g.Rand, sizeOptions)
	case "Color":
		return fake.ColorName(g.Rand)
	case "Storage":
		return rng.Choice(g.Rand, storageOptions)
	case "RAM":
		return rng.Choice(g.Rand, ramOptions)
	case "Weight":
		return fmt.Sprintf("%.1f kg", g.Rand.FloatBetween(0.5, 5))
	default:
		return fake.CapitalizedWord(g.Rand)
	}
}

func appendUnique(xs []string, x string) []string {
	for _, v := range xs {
		if v == x {
			return xs
		}
	}
	return append(xs, x)
}
