package usecase

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriikh/ecomgen/internal/domain"
)

var orderIDPattern = regexp.MustCompile(`ORD-\d{7}`)

func TestSupportInvariants(t *testing.T) {
	products, customers, r := orderFixtures(t, 42, 40, 25)
	og := &OrderGenerator{Rand: r}
	orders, _, err := og.Generate(products, customers, 100, testNow)
	require.NoError(t, err)

	g := &SupportGenerator{Rand: r}
	conversations, err := g.Generate(customers, products, orders, 150, testNow)
	require.NoError(t, err)
	require.NotEmpty(t, conversations)
	assert.LessOrEqual(t, len(conversations), 150)

	custByID := make(map[string]domain.Customer, len(customers))
	for _, c := range customers {
		custByID[c.CustomerID] = c
	}
	orderByID := make(map[string]domain.Order, len(orders))
	for _, o := range orders {
		orderByID[o.OrderID] = o
	}

	for i, conv := range conversations {
		assert.Equal(t, fmt.Sprintf("CONV-%06d", i+1), conv.ConversationID)
		_, ok := custByID[conv.CustomerID]
		require.True(t, ok, "conversation references unknown customer %q", conv.CustomerID)

		assert.Contains(t, domain.IssueTypes, conv.IssueType)
		assert.Contains(t, []string{"chat", "email", "phone"}, conv.Channel)
		assert.Regexp(t, `^AGT-\d{3}$`, conv.AgentID)
		assert.NotContains(t, conv.CustomerMessage, "{", "unfilled slot in customer message")
		assert.NotContains(t, conv.AgentMessage, "{", "unfilled slot in agent message")

		assert.GreaterOrEqual(t, conv.ResolutionTimeMinutes, 5)
		assert.LessOrEqual(t, conv.ResolutionTimeMinutes, 120)
		assert.GreaterOrEqual(t, conv.SatisfactionScore, 1)
		assert.LessOrEqual(t, conv.SatisfactionScore, 5)
		if conv.Outcome == domain.OutcomeResolved {
			assert.GreaterOrEqual(t, conv.SatisfactionScore, 3)
		}

		assert.False(t, conv.Date.After(testNow))
		assert.False(t, conv.Date.Before(testNow.AddDate(0, -6, 0)))

		if conv.IssueType == domain.IssueOrderStatus {
			id := orderIDPattern.FindString(conv.CustomerMessage)
			require.NotEmpty(t, id, "order_status message without an order id")
			o, ok := orderByID[id]
			require.True(t, ok, "conversation references unknown order %q", id)
			assert.Equal(t, conv.CustomerID, o.CustomerID, "referenced order belongs to another customer")
		}
	}
}

func TestSupportNoOrderStatusWithoutOrders(t *testing.T) {
	products, customers, r := orderFixtures(t, 5, 20, 10)
	g := &SupportGenerator{Rand: r}
	conversations, err := g.Generate(customers, products, nil, 100, testNow)
	require.NoError(t, err)

	for _, conv := range conversations {
		assert.NotEqual(t, domain.IssueOrderStatus, conv.IssueType)
	}
}

func TestSupportGenerateEmptyInputs(t *testing.T) {
	products, customers, r := orderFixtures(t, 2, 5, 5)
	g := &SupportGenerator{Rand: r}

	_, err := g.Generate(nil, products, nil, 10, testNow)
	require.Error(t, err)
	_, err = g.Generate(customers, nil, nil, 10, testNow)
	require.Error(t, err)
}
