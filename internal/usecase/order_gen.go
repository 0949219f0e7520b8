package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/andriikh/ecomgen/internal/domain"
	"github.com/andriikh/ecomgen/internal/fake"
	"github.com/andriikh/ecomgen/internal/rng"
)

var (
	itemCounts      = []int{1, 2, 3, 4, 5}
	itemCountWeight = []float64{0.50, 0.25, 0.15, 0.08, 0.02}

	quantities      = []int{1, 2, 3}
	quantityWeights = []float64{0.80, 0.15, 0.05}

	paymentMethods = []string{"credit_card", "debit_card", "paypal", "apple_pay"}

	settledStatuses = []domain.OrderStatus{domain.OrderStatusDelivered, domain.OrderStatusCancelled, domain.OrderStatusReturned}
	settledWeights  = []float64{0.85, 0.10, 0.05}
)

// OrderGenerator consumes the catalog and customer tables and produces orders
// with their line items. Customers are sampled with replacement; products
// within one order are sampled without replacement, preferring the customer's
// preferred categories 70% of the time.
type OrderGenerator struct {
	Rand *rng.Rand
}

func (g *OrderGenerator) Generate(products []domain.Product, customers []domain.Customer, k int, now time.Time) ([]domain.Order, []domain.OrderItem, error) {
	if len(products) == 0 || len(customers) == 0 {
		return nil, nil, errors.New("order generation requires non-empty product and customer tables")
	}

	byCategory := make(map[string][]domain.Product)
	for _, p := range products {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	orders := make([]domain.Order, 0, k)
	items := make([]domain.OrderItem, 0, k)
	for i := 0; i < k; i++ {
		customer := rng.Choice(g.Rand, customers)
		orderDate := g.Rand.TimeBetween(customer.SignupDate, now)
		wantItems := rng.WeightedChoice(g.Rand, itemCounts, itemCountWeight)

		pool := products
		if g.Rand.Bool(0.70) {
			var preferred []domain.Product
			for _, cat := range customer.PreferredCategories {
				preferred = append(preferred, byCategory[cat]...)
			}
			if len(preferred) > 0 {
				pool = preferred
			}
		}
		picked := rng.Sample(g.Rand, pool, wantItems)

		orderID := fmt.Sprintf("ORD-%07d", i+1)
		subtotal := 0.0
		for _, p := range picked {
			qty := rng.WeightedChoice(g.Rand, quantities, quantityWeights)
			lineTotal := Round2(p.FinalPrice * float64(qty))
			subtotal += lineTotal
			items = append(items, domain.OrderItem{
				OrderID:     orderID,
				ProductID:   p.ProductID,
				ProductName: p.Name,
				Quantity:    qty,
				UnitPrice:   p.FinalPrice,
				TotalPrice:  lineTotal,
			})
		}
		subtotal = Round2(subtotal)
		tax := Round2(subtotal * domain.TaxRate)
		shipping := domain.FlatShippingFee
		if subtotal > domain.FreeShippingAbove {
			shipping = 0
		}
		total := Round2(subtotal + tax + shipping)

		status := g.status(orderDate, now)
		var delivery *time.Time
		if status == domain.OrderStatusDelivered {
			d := orderDate.AddDate(0, 0, g.Rand.IntBetween(2, 10))
			delivery = &d
		}

		address := fmt.Sprintf("%s, %s, %s", fake.StreetAddress(g.Rand), fake.City(g.Rand), fake.Country(g.Rand))
		orders = append(orders, domain.Order{
			OrderID:         orderID,
			CustomerID:      customer.CustomerID,
			OrderDate:       orderDate,
			Status:          status,
			NumItems:        len(picked),
			Subtotal:        subtotal,
			Tax:             tax,
			Shipping:        shipping,
			Total:           total,
			PaymentMethod:   rng.Choice(g.Rand, paymentMethods),
			ShippingAddress: address,
			DeliveryDate:    delivery,
		})
	}
	return orders, items, nil
}

// status derives a lifecycle state from the order's age: fresh orders are
// pending or processing, week-old orders are in the delivery pipeline, older
// orders have settled into delivered, cancelled or returned.
func (g *OrderGenerator) status(orderDate, now time.Time) domain.OrderStatus {
	days := int(now.Sub(orderDate).Hours() / 24)
	switch {
	case days < 2:
		return rng.Choice(g.Rand, []domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusProcessing})
	case days < 7:
		return rng.Choice(g.Rand, []domain.OrderStatus{domain.OrderStatusShipped, domain.OrderStatusInTransit})
	default:
		return rng.WeightedChoice(g.Rand, settledStatuses, settledWeights)
	}
}
