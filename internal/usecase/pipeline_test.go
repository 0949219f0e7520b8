package usecase

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriikh/ecomgen/internal/rng"
)

func TestPipelineProducesConsistentDataset(t *testing.T) {
	p := &Pipeline{Rand: rng.New(42), Log: zerolog.Nop()}
	ds, err := p.Run(Counts{Products: 10, Customers: 20, Orders: 30, Conversations: 15}, testNow)
	require.NoError(t, err)

	assert.Len(t, ds.Products, 10)
	assert.Len(t, ds.Customers, 20)
	assert.Len(t, ds.Orders, 30)
	assert.GreaterOrEqual(t, len(ds.OrderItems), 30)
	assert.LessOrEqual(t, len(ds.OrderItems), 150)
	assert.LessOrEqual(t, len(ds.Conversations), 15)
	assert.Len(t, ds.Articles, 8)
	assert.Len(t, ds.Embeddings, 10)

	customerIDs := map[string]bool{}
	for _, c := range ds.Customers {
		customerIDs[c.CustomerID] = true
	}
	productIDs := map[string]bool{}
	for _, pr := range ds.Products {
		productIDs[pr.ProductID] = true
	}
	orderIDs := map[string]bool{}
	for _, o := range ds.Orders {
		orderIDs[o.OrderID] = true
		assert.True(t, customerIDs[o.CustomerID], "order %s references unknown customer", o.OrderID)
	}
	for _, it := range ds.OrderItems {
		assert.True(t, orderIDs[it.OrderID], "item references unknown order %s", it.OrderID)
		assert.True(t, productIDs[it.ProductID], "item references unknown product %s", it.ProductID)
	}
	for _, cv := range ds.Conversations {
		assert.True(t, customerIDs[cv.CustomerID], "conversation %s references unknown customer", cv.ConversationID)
	}
	for id := range ds.Embeddings {
		assert.True(t, productIDs[id], "embedding for unknown product %s", id)
	}
}

func TestPipelineDeterministic(t *testing.T) {
	counts := Counts{Products: 15, Customers: 25, Orders: 40, Conversations: 20}

	a, err := (&Pipeline{Rand: rng.New(42), Log: zerolog.Nop()}).Run(counts, testNow)
	require.NoError(t, err)
	b, err := (&Pipeline{Rand: rng.New(42), Log: zerolog.Nop()}).Run(counts, testNow)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := (&Pipeline{Rand: rng.New(43), Log: zerolog.Nop()}).Run(counts, testNow)
	require.NoError(t, err)
	assert.NotEqual(t, a.Products, c.Products)
}

func TestPipelineRejectsEmptyBaseTables(t *testing.T) {
	p := &Pipeline{Rand: rng.New(1), Log: zerolog.Nop()}

	_, err := p.Run(Counts{Products: 0, Customers: 10}, testNow)
	require.Error(t, err)
	_, err = p.Run(Counts{Products: 10, Customers: 0}, testNow)
	require.Error(t, err)
	_, err = p.Run(Counts{Products: 10, Customers: 10, Orders: -1}, testNow)
	require.Error(t, err)
}

func TestRevenueStats(t *testing.T) {
	total, avg := RevenueStats(nil)
	assert.Zero(t, total)
	assert.Zero(t, avg)

	p := &Pipeline{Rand: rng.New(42), Log: zerolog.Nop()}
	ds, err := p.Run(Counts{Products: 10, Customers: 10, Orders: 20}, testNow)
	require.NoError(t, err)

	want := 0.0
	for _, o := range ds.Orders {
		want += o.Total
	}
	total, avg = RevenueStats(ds.Orders)
	assert.InDelta(t, want, total, 1e-9)
	assert.InDelta(t, want/float64(len(ds.Orders)), avg, 1e-9)
}
