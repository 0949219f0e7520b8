package writer

import (
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriikh/ecomgen/internal/domain"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteProducts(t *testing.T) {
	w := NewCSV(t.TempDir())
	path, err := w.WriteProducts([]domain.Product{{
		ProductID:       "PROD-00001",
		Name:            "TechPro Premium Laptops",
		Category:        "Electronics",
		Subcategory:     "Laptops",
		Brand:           "TechPro",
		BasePrice:       999.99,
		DiscountPercent: 10,
		FinalPrice:      899.99,
		Currency:        "USD",
		StockQuantity:   12,
		InStock:         true,
		Rating:          4.5,
		NumReviews:      321,
		Description:     "A laptop, with a comma in its description",
		Attributes:      map[string]string{"RAM": "16GB"},
		Tags:            []string{"Electronics", "Laptops", "TechPro"},
		CreatedDate:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		UpdatedDate:     time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)

	records := readCSV(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, "product_id", records[0][0])

	row := records[1]
	assert.Equal(t, "PROD-00001", row[0])
	assert.Equal(t, "999.99", row[5])
	assert.Equal(t, "899.99", row[7])
	assert.Equal(t, "true", row[10])
	assert.Equal(t, "A laptop, with a comma in its description", row[13])
	assert.Equal(t, `{"RAM":"16GB"}`, row[14])
	assert.Equal(t, "Electronics,Laptops,TechPro", row[15])
	assert.Equal(t, "2024-01-05", row[16])
}

func TestWriteOrdersDeliveryDate(t *testing.T) {
	w := NewCSV(t.TempDir())
	delivered := time.Date(2025, 5, 10, 14, 30, 0, 0, time.UTC)
	path, err := w.WriteOrders([]domain.Order{
		{OrderID: "ORD-0000001", CustomerID: "CUST-000001", OrderDate: delivered.AddDate(0, 0, -5),
			Status: domain.OrderStatusDelivered, Subtotal: 40, Tax: 3.2, Shipping: 9.99, Total: 53.19,
			DeliveryDate: &delivered},
		{OrderID: "ORD-0000002", CustomerID: "CUST-000001", OrderDate: delivered,
			Status: domain.OrderStatusPending, Subtotal: 60, Tax: 4.8, Total: 64.80},
	})
	require.NoError(t, err)

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, "2025-05-10 14:30:00", records[1][11])
	assert.Equal(t, "", records[2][11])
	assert.Equal(t, "0.00", records[2][7])
}
