// Package writer persists a generated dataset: CSV and JSON tables, the
// embeddings blob, the run manifest and an optional Excel workbook.
package writer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andriikh/ecomgen/internal/domain"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// CSV writes one file per table into Dir.
type CSV struct {
	Dir string
}

func NewCSV(dir string) *CSV { return &CSV{Dir: dir} }

func (w *CSV) WriteProducts(ps []domain.Product) (string, error) {
	header := []string{
		"product_id", "name", "category", "subcategory", "brand",
		"base_price", "discount_percent", "final_price", "currency",
		"stock_quantity", "in_stock", "rating", "num_reviews",
		"description", "attributes", "tags", "created_date", "updated_date",
	}
	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		attrs, err := json.Marshal(p.Attributes)
		if err != nil {
			return "", fmt.Errorf("encode attributes for %s: %w", p.ProductID, err)
		}
		rows = append(rows, []string{
			p.ProductID,
			p.Name,
			p.Category,
			p.Subcategory,
			p.Brand,
			money(p.BasePrice),
			strconv.Itoa(p.DiscountPercent),
			money(p.FinalPrice),
			p.Currency,
			strconv.Itoa(p.StockQuantity),
			strconv.FormatBool(p.InStock),
			strconv.FormatFloat(p.Rating, 'f', 1, 64),
			strconv.Itoa(p.NumReviews),
			p.Description,
			string(attrs),
			strings.Join(p.Tags, ","),
			p.CreatedDate.Format(dateLayout),
			p.UpdatedDate.Format(dateLayout),
		})
	}
	return w.write("products.csv", header, rows)
}

func (w *CSV) WriteCustomers(cs []domain.Customer) (string, error) {
	header := []string{
		"customer_id", "name", "email", "phone", "country", "city",
		"signup_date", "last_login", "segment", "total_orders", "total_spent",
		"average_order_value", "preferred_categories", "is_premium",
		"email_subscribed", "churn_risk",
	}
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{
			c.CustomerID,
			c.Name,
			c.Email,
			c.Phone,
			c.Country,
			c.City,
			c.SignupDate.Format(dateLayout),
			c.LastLogin.Format(dateLayout),
			string(c.Segment),
			strconv.Itoa(c.TotalOrders),
			money(c.TotalSpent),
			money(c.AverageOrderValue),
			strings.Join(c.PreferredCategories, ","),
			strconv.FormatBool(c.IsPremium),
			strconv.FormatBool(c.EmailSubscribed),
			string(c.ChurnRisk),
		})
	}
	return w.write("customers.csv", header, rows)
}

func (w *CSV) WriteOrders(os_ []domain.Order) (string, error) {
	header := []string{
		"order_id", "customer_id", "order_date", "status", "num_items",
		"subtotal", "tax", "shipping", "total", "payment_method",
		"shipping_address", "delivery_date",
	}
	rows := make([][]string, 0, len(os_))
	for _, o := range os_ {
		delivery := ""
		if o.DeliveryDate != nil {
			delivery = o.DeliveryDate.Format(dateTimeLayout)
		}
		rows = append(rows, []string{
			o.OrderID,
			o.CustomerID,
			o.OrderDate.Format(dateTimeLayout),
			string(o.Status),
			strconv.Itoa(o.NumItems),
			money(o.Subtotal),
			money(o.Tax),
			money(o.Shipping),
			money(o.Total),
			o.PaymentMethod,
			o.ShippingAddress,
			delivery,
		})
	}
	return w.write("orders.csv", header, rows)
}

func (w *CSV) WriteOrderItems(items []domain.OrderItem) (string, error) {
	header := []string{"order_id", "product_id", "product_name", "quantity", "unit_price", "total_price"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.OrderID,
			it.ProductID,
			it.ProductName,
			strconv.Itoa(it.Quantity),
			money(it.UnitPrice),
			money(it.TotalPrice),
		})
	}
	return w.write("order_items.csv", header, rows)
}

func (w *CSV) WriteConversations(cs []domain.SupportConversation) (string, error) {
	header := []string{
		"conversation_id", "customer_id", "date", "channel", "issue_type",
		"customer_message", "agent_message", "agent_id", "sentiment",
		"outcome", "resolution_time_minutes", "satisfaction_score",
		"follow_up_needed",
	}
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{
			c.ConversationID,
			c.CustomerID,
			c.Date.Format(dateTimeLayout),
			c.Channel,
			string(c.IssueType),
			c.CustomerMessage,
			c.AgentMessage,
			c.AgentID,
			string(c.Sentiment),
			string(c.Outcome),
			strconv.Itoa(c.ResolutionTimeMinutes),
			strconv.Itoa(c.SatisfactionScore),
			strconv.FormatBool(c.FollowUpNeeded),
		})
	}
	return w.write("support_conversations.csv", header, rows)
}

func (w *CSV) WriteKB(articles []domain.KBArticle) (string, error) {
	header := []string{"doc_id", "category", "title", "content", "tags", "views", "helpful_votes"}
	rows := make([][]string, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, []string{
			a.DocID,
			a.Category,
			a.Title,
			a.Content,
			strings.Join(a.Tags, ","),
			strconv.Itoa(a.Views),
			strconv.Itoa(a.HelpfulVotes),
		})
	}
	return w.write("knowledge_base.csv", header, rows)
}

func (w *CSV) write(name string, header []string, rows [][]string) (string, error) {
	path := filepath.Join(w.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		f.Close()
		return "", fmt.Errorf("write header of %s: %w", name, err)
	}
	if err := cw.WriteAll(rows); err != nil {
		f.Close()
		return "", fmt.Errorf("write rows of %s: %w", name, err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("flush %s: %w", name, err)
	}
	return path, f.Close()
}

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
