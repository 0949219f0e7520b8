package usecase

import (
	"fmt"
	"time"

	"github.com/andriikh/ecomgen/internal/domain"
	"github.com/andriikh/ecomgen/internal/fake"
	"github.com/andriikh/ecomgen/internal/rng"
)

var (
	segments       = []domain.Segment{domain.SegmentHighValue, domain.SegmentRegular, domain.SegmentOccasional, domain.SegmentNew}
	segmentWeights = []float64{0.10, 0.40, 0.35, 0.15}

	churnLevels  = []domain.ChurnRisk{domain.ChurnLow, domain.ChurnMedium, domain.ChurnHigh}
	churnWeights = []float64{0.60, 0.30, 0.10}
)

// CustomerGenerator produces the customer table. Behavioral aggregates are
// conditioned on the sampled segment and kept mutually consistent:
// average_order_value = total_spent / max(total_orders, 1).
type CustomerGenerator struct {
	Rand *rng.Rand
}

func (g *CustomerGenerator) Generate(m int, now time.Time) []domain.Customer {
	customers := make([]domain.Customer, 0, m)
	for i := 0; i < m; i++ {
		signup := g.Rand.DateBetween(now.AddDate(-3, 0, 0), now)
		segment := rng.WeightedChoice(g.Rand, segments, segmentWeights)

		var totalOrders int
		var totalSpent float64
		switch segment {
		case domain.SegmentHighValue:
			totalOrders = g.Rand.IntBetween(50, 200)
			totalSpent = g.Rand.FloatBetween(5000, 50000)
		case domain.SegmentRegular:
			totalOrders = g.Rand.IntBetween(10, 50)
			totalSpent = g.Rand.FloatBetween(1000, 5000)
		case domain.SegmentOccasional:
			totalOrders = g.Rand.IntBetween(2, 10)
			totalSpent = g.Rand.FloatBetween(100, 1000)
		default: // new, possibly with zero orders
			totalOrders = g.Rand.IntBetween(0, 2)
			totalSpent = g.Rand.FloatBetween(0, 200)
		}
		totalSpent = Round2(totalSpent)
		divisor := totalOrders
		if divisor < 1 {
			divisor = 1
		}
		avgOrder := Round2(totalSpent / float64(divisor))

		name := fake.Name(g.Rand)
		customers = append(customers, domain.Customer{
			CustomerID:          fmt.Sprintf("CUST-%06d", i+1),
			Name:                name,
			Email:               fake.Email(g.Rand, name),
			Phone:               fake.Phone(g.Rand),
			Country:             fake.Country(g.Rand),
			City:                fake.City(g.Rand),
			SignupDate:          signup,
			LastLogin:           g.Rand.DateBetween(signup, now),
			Segment:             segment,
			TotalOrders:         totalOrders,
			TotalSpent:          totalSpent,
			AverageOrderValue:   avgOrder,
			PreferredCategories: rng.Sample(g.Rand, domain.CategoryOrder, g.Rand.IntBetween(1, 3)),
			IsPremium:           g.Rand.Bool(0.15),
			EmailSubscribed:     g.Rand.Bool(0.60),
			ChurnRisk:           rng.WeightedChoice(g.Rand, churnLevels, churnWeights),
		})
	}
	return customers
}
