package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriikh/ecomgen/internal/domain"
	"github.com/andriikh/ecomgen/internal/rng"
)

func TestCustomerInvariants(t *testing.T) {
	g := &CustomerGenerator{Rand: rng.New(42)}
	customers := g.Generate(300, testNow)
	require.Len(t, customers, 300)

	for i, c := range customers {
		assert.Equal(t, fmt.Sprintf("CUST-%06d", i+1), c.CustomerID)
		assert.NotEmpty(t, c.Name)
		assert.Contains(t, c.Email, "@")

		assert.False(t, c.LastLogin.Before(c.SignupDate), "last_login before signup_date")
		assert.False(t, c.SignupDate.After(testNow))

		divisor := c.TotalOrders
		if divisor < 1 {
			divisor = 1
		}
		assert.Equal(t, Round2(c.TotalSpent/float64(divisor)), c.AverageOrderValue)

		switch c.Segment {
		case domain.SegmentHighValue:
			assert.GreaterOrEqual(t, c.TotalOrders, 50)
			assert.LessOrEqual(t, c.TotalOrders, 200)
			assert.GreaterOrEqual(t, c.TotalSpent, 5000.0)
		case domain.SegmentRegular:
			assert.GreaterOrEqual(t, c.TotalOrders, 10)
			assert.LessOrEqual(t, c.TotalOrders, 50)
		case domain.SegmentOccasional:
			assert.GreaterOrEqual(t, c.TotalOrders, 2)
			assert.LessOrEqual(t, c.TotalOrders, 10)
		case domain.SegmentNew:
			assert.LessOrEqual(t, c.TotalOrders, 2)
		default:
			t.Fatalf("unknown segment %q", c.Segment)
		}

		require.NotEmpty(t, c.PreferredCategories)
		assert.LessOrEqual(t, len(c.PreferredCategories), 3)
		seen := map[string]bool{}
		for _, cat := range c.PreferredCategories {
			assert.Contains(t, domain.CategoryOrder, cat)
			assert.False(t, seen[cat], "duplicate preferred category %q", cat)
			seen[cat] = true
		}
	}
}

func TestCustomerSegmentMix(t *testing.T) {
	g := &CustomerGenerator{Rand: rng.New(1)}
	counts := map[domain.Segment]int{}
	for _, c := range g.Generate(1000, testNow) {
		counts[c.Segment]++
	}
	// regular (40%) should dominate high_value (10%) at this sample size
	assert.Greater(t, counts[domain.SegmentRegular], counts[domain.SegmentHighValue])
	assert.Greater(t, counts[domain.SegmentOccasional], counts[domain.SegmentHighValue])
}

func TestCustomerDeterministic(t *testing.T) {
	a := (&CustomerGenerator{Rand: rng.New(42)}).Generate(40, testNow)
	b := (&CustomerGenerator{Rand: rng.New(42)}).Generate(40, testNow)
	require.Equal(t, a, b)
}
