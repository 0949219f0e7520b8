package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/andriikh/ecomgen/internal/domain"
	"github.com/andriikh/ecomgen/internal/rng"
)

// SupportGenerator produces templated support transcripts referencing real
// customers, products and orders. Each attempt first builds a typed context
// holding exactly the entities the templates will reference; an order_status
// attempt for a customer without orders yields nothing and is not retried, so
// the emitted count is at most the requested count.
type SupportGenerator struct {
	Rand *rng.Rand
}

// conversationContext captures the entities one attempt references, resolved
// before any template is filled.
type conversationContext struct {
	customer domain.Customer
	order    *domain.Order
	product  *domain.Product
	category string
	// secondary picks for recommendation responses
	extras []domain.Product
}

func (g *SupportGenerator) Generate(customers []domain.Customer, products []domain.Product, orders []domain.Order, p int, now time.Time) ([]domain.SupportConversation, error) {
	if len(customers) == 0 || len(products) == 0 {
		return nil, errors.New("support generation requires non-empty customer and product tables")
	}

	ordersByCustomer := make(map[string][]domain.Order)
	for _, o := range orders {
		ordersByCustomer[o.CustomerID] = append(ordersByCustomer[o.CustomerID], o)
	}
	byCategory := make(map[string][]domain.Product)
	for _, pr := range products {
		byCategory[pr.Category] = append(byCategory[pr.Category], pr)
	}
	// technical_issue samples Electronics; small catalogs may have none.
	electronics := byCategory["Electronics"]
	if len(electronics) == 0 {
		electronics = products
	}

	conversations := make([]domain.SupportConversation, 0, p)
	for attempt := 0; attempt < p; attempt++ {
		customer := rng.Choice(g.Rand, customers)
		issue := rng.Choice(g.Rand, domain.IssueTypes)

		ctx, ok := g.buildContext(customer, issue, products, electronics, byCategory, ordersByCustomer)
		if !ok {
			continue
		}

		message := g.customerMessage(issue, ctx)
		response := g.agentResponse(issue, ctx, now)

		outcome := rng.WeightedChoice(g.Rand, outcomes, outcomeWeights)
		satisfaction := g.Rand.IntBetween(1, 3)
		if outcome == domain.OutcomeResolved {
			satisfaction = g.Rand.IntBetween(3, 5)
		}

		conversations = append(conversations, domain.SupportConversation{
			ConversationID:        fmt.Sprintf("CONV-%06d", len(conversations)+1),
			CustomerID:            customer.CustomerID,
			Date:                  g.Rand.TimeBetween(now.AddDate(0, -6, 0), now),
			Channel:               rng.Choice(g.Rand, channels),
			IssueType:             issue,
			CustomerMessage:       message,
			AgentMessage:          response,
			AgentID:               fmt.Sprintf("AGT-%03d", g.Rand.IntBetween(1, 50)),
			Sentiment:             rng.WeightedChoice(g.Rand, sentiments, sentimentWeights),
			Outcome:               outcome,
			ResolutionTimeMinutes: g.Rand.IntBetween(5, 120),
			SatisfactionScore:     satisfaction,
			FollowUpNeeded:        g.Rand.Bool(0.15),
		})
	}
	return conversations, nil
}

// buildContext resolves the entities an attempt will reference. It reports
// false only for the one unsatisfiable case: order_status for a customer with
// no orders.
func (g *SupportGenerator) buildContext(
	customer domain.Customer,
	issue domain.IssueType,
	products, electronics []domain.Product,
	byCategory map[string][]domain.Product,
	ordersByCustomer map[string][]domain.Order,
) (conversationContext, bool) {
	ctx := conversationContext{customer: customer}

	switch issue {
	case domain.IssueOrderStatus:
		own := ordersByCustomer[customer.CustomerID]
		if len(own) == 0 {
			return ctx, false
		}
		o := rng.Choice(g.Rand, own)
		ctx.order = &o
	case domain.IssueProductInquiry:
		ctx.category = rng.Choice(g.Rand, domain.CategoryOrder)
		pool := byCategory[ctx.category]
		if len(pool) == 0 {
			pool = products
		}
		p := rng.Choice(g.Rand, pool)
		ctx.product = &p
	case domain.IssueTechnical:
		p := rng.Choice(g.Rand, electronics)
		ctx.product = &p
	case domain.IssueRecommendation:
		ctx.category = rng.Choice(g.Rand, domain.CategoryOrder)
		ctx.extras = rng.Sample(g.Rand, products, 3)
	default: // return_request, price_inquiry
		p := rng.Choice(g.Rand, products)
		ctx.product = &p
	}
	return ctx, true
}

func (g *SupportGenerator) customerMessage(issue domain.IssueType, ctx conversationContext) string {
	tpl := rng.Choice(g.Rand, customerTemplates[issue])
	switch issue {
	case domain.IssueProductInquiry:
		sub := rng.Choice(g.Rand, domain.Categories[ctx.category].Subcategories)
		return fillTemplate(tpl, map[string]string{
			"product_type": strings.ToLower(sub),
			"feature":      rng.Choice(g.Rand, inquiryFeatures),
			"requirement":  rng.Choice(g.Rand, inquiryRequirements),
			"use_case":     rng.Choice(g.Rand, inquiryUseCases),
		})
	case domain.IssueOrderStatus:
		return fillTemplate(tpl, map[string]string{
			"order_id": ctx.order.OrderID,
			"days":     strconv.Itoa(g.Rand.IntBetween(3, 15)),
		})
	case domain.IssueReturnRequest:
		return fillTemplate(tpl, map[string]string{
			"product": ctx.product.Name,
			"issue":   rng.Choice(g.Rand, returnIssues),
			"defect":  rng.Choice(g.Rand, returnDefects),
		})
	case domain.IssueTechnical:
		return fillTemplate(tpl, map[string]string{
			"product":       ctx.product.Name,
			"component":     rng.Choice(g.Rand, techComponents),
			"time_period":   rng.Choice(g.Rand, techPeriods),
			"error_message": rng.Choice(g.Rand, techErrors),
		})
	case domain.IssuePriceInquiry:
		return fillTemplate(tpl, map[string]string{
			"product":    ctx.product.Name,
			"old_price":  fmt.Sprintf("%.2f", ctx.product.BasePrice),
			"new_price":  fmt.Sprintf("%.2f", ctx.product.FinalPrice),
			"competitor": rng.Choice(g.Rand, priceCompetitor),
		})
	default: // recommendation
		sub := domain.Categories[ctx.category].Subcategories[0]
		return fillTemplate(tpl, map[string]string{
			"product_type": strings.ToLower(sub),
			"budget":       rng.Choice(g.Rand, recoBudgets),
			"description":  rng.Choice(g.Rand, recoDescriptions),
			"occasion":     rng.Choice(g.Rand, recoOccasions),
		})
	}
}

// agentResponse fills the matching response template from the same context,
// so the agent talks about the same order, product or email as the customer.
func (g *SupportGenerator) agentResponse(issue domain.IssueType, ctx conversationContext, now time.Time) string {
	tpl := rng.Choice(g.Rand, agentTemplates[issue])
	switch issue {
	case domain.IssueProductInquiry:
		return fillTemplate(tpl, map[string]string{
			"recommendation": ctx.product.Name,
			"features":       rng.Choice(g.Rand, agentFeatures),
			"rating":         strconv.FormatFloat(ctx.product.Rating, 'f', 1, 64),
			"product":        ctx.product.Name,
			"reason":         rng.Choice(g.Rand, agentReasons),
			"count":          strconv.Itoa(g.Rand.IntBetween(5, 20)),
		})
	case domain.IssueOrderStatus:
		return fillTemplate(tpl, map[string]string{
			"order_id": ctx.order.OrderID,
			"status":   string(ctx.order.Status),
			"date":     g.Rand.DateBetween(now, now.AddDate(0, 0, 7)).Format("2006-01-02"),
			"carrier":  rng.Choice(g.Rand, carriers),
			"tracking": strconv.Itoa(g.Rand.IntBetween(1000000000, 9999999999)),
		})
	case domain.IssueReturnRequest:
		return fillTemplate(tpl, map[string]string{
			"product": ctx.product.Name,
			"email":   ctx.customer.Email,
		})
	case domain.IssueTechnical:
		return fillTemplate(tpl, map[string]string{
			"step1":     "restarting the device",
			"step2":     "checking for updates",
			"solution":  rng.Choice(g.Rand, techSolutions),
			"diagnosis": rng.Choice(g.Rand, techDiagnoses),
		})
	case domain.IssuePriceInquiry:
		return fillTemplate(tpl, map[string]string{
			"reason":      rng.Choice(g.Rand, priceReasons),
			"discount":    rng.Choice(g.Rand, priceDiscounts),
			"quantity":    rng.Choice(g.Rand, priceQuantities),
			"alternative": "free shipping and extended warranty",
		})
	default: // recommendation
		names := make([]string, len(ctx.extras))
		for i, p := range ctx.extras {
			names[i] = p.Name
		}
		product1 := "Sample Product"
		product2 := "Another Product"
		if len(names) > 0 {
			product1 = names[0]
		}
		if len(names) > 1 {
			product2 = names[1]
		}
		return fillTemplate(tpl, map[string]string{
			"product1":        product1,
			"product2":        product2,
			"comparison":      "better value for money",
			"list":            strings.Join(names, ", "),
			"favorite":        product1,
			"reason":          rng.Choice(g.Rand, recoReasons),
			"product":         product1,
			"price":           fmt.Sprintf("$%.2f", ctx.extras[0].FinalPrice),
			"special_feature": rng.Choice(g.Rand, recoFeatures),
			"occasion":        rng.Choice(g.Rand, recoForWhom),
		})
	}
}
