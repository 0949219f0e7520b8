package usecase

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/andriikh/ecomgen/internal/domain"
	"github.com/andriikh/ecomgen/internal/rng"
)

// Counts is the requested size of each generated table. The conversation
// count is an upper bound; unsatisfiable order_status attempts are dropped.
type Counts struct {
	Products      int
	Customers     int
	Orders        int
	Conversations int
}

// Pipeline sequences the generators in dependency order. Every stage fully
// materializes its table before the next one samples from it, and all
// randomness flows through the single Rand, so a run is a pure function of
// (seed, counts, now).
type Pipeline struct {
	Rand *rng.Rand
	Log  zerolog.Logger
}

func (p *Pipeline) Run(c Counts, now time.Time) (*domain.Dataset, error) {
	if c.Products <= 0 || c.Customers <= 0 {
		return nil, errors.New("product and customer counts must be positive: later stages sample from both tables")
	}
	if c.Orders < 0 || c.Conversations < 0 {
		return nil, errors.New("order and conversation counts must not be negative")
	}

	ds := &domain.Dataset{}

	ds.Products = (&CatalogGenerator{Rand: p.Rand}).Generate(c.Products, now)
	p.Log.Info().
		Int("products", len(ds.Products)).
		Interface("by_category", countBy(ds.Products, func(pr domain.Product) string { return pr.Category })).
		Msg("catalog generated")

	ds.Customers = (&CustomerGenerator{Rand: p.Rand}).Generate(c.Customers, now)
	p.Log.Info().
		Int("customers", len(ds.Customers)).
		Interface("by_segment", countBy(ds.Customers, func(cu domain.Customer) string { return string(cu.Segment) })).
		Msg("customers generated")

	orders, items, err := (&OrderGenerator{Rand: p.Rand}).Generate(ds.Products, ds.Customers, c.Orders, now)
	if err != nil {
		return nil, err
	}
	ds.Orders, ds.OrderItems = orders, items
	revenue, avg := RevenueStats(ds.Orders)
	p.Log.Info().
		Int("orders", len(ds.Orders)).
		Int("order_items", len(ds.OrderItems)).
		Interface("by_status", countBy(ds.Orders, func(o domain.Order) string { return string(o.Status) })).
		Float64("total_revenue", revenue).
		Float64("avg_order_value", avg).
		Msg("orders generated")

	ds.Conversations, err = (&SupportGenerator{Rand: p.Rand}).Generate(ds.Customers, ds.Products, ds.Orders, c.Conversations, now)
	if err != nil {
		return nil, err
	}
	p.Log.Info().
		Int("conversations", len(ds.Conversations)).
		Int("requested", c.Conversations).
		Interface("by_issue", countBy(ds.Conversations, func(cv domain.SupportConversation) string { return string(cv.IssueType) })).
		Interface("by_outcome", countBy(ds.Conversations, func(cv domain.SupportConversation) string { return string(cv.Outcome) })).
		Msg("support conversations generated")

	ds.Articles = (&KBGenerator{Rand: p.Rand}).Generate()
	p.Log.Info().Int("articles", len(ds.Articles)).Msg("knowledge base generated")

	ds.Embeddings = (&EmbeddingGenerator{Rand: p.Rand}).Generate(ds.Products)
	p.Log.Info().Int("embeddings", len(ds.Embeddings)).Int("dim", domain.EmbeddingDim).Msg("product embeddings generated")

	return ds, nil
}

// RevenueStats returns the total and mean order value over the order table.
func RevenueStats(orders []domain.Order) (total, avg float64) {
	for _, o := range orders {
		total += o.Total
	}
	if len(orders) > 0 {
		avg = total / float64(len(orders))
	}
	return total, avg
}

func countBy[T any](xs []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, x := range xs {
		out[key(x)]++
	}
	return out
}
