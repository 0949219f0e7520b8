package writer

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/andriikh/ecomgen/internal/domain"
)

// WriteWorkbook exports the whole dataset as one multi-sheet xlsx workbook,
// one sheet per table. Embeddings stay in their binary blob.
func WriteWorkbook(path string, ds *domain.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, "Products", productSheet(ds.Products)); err != nil {
		return err
	}
	if err := writeSheet(f, "Customers", customerSheet(ds.Customers)); err != nil {
		return err
	}
	if err := writeSheet(f, "Orders", orderSheet(ds.Orders)); err != nil {
		return err
	}
	if err := writeSheet(f, "OrderItems", orderItemSheet(ds.OrderItems)); err != nil {
		return err
	}
	if err := writeSheet(f, "Conversations", conversationSheet(ds.Conversations)); err != nil {
		return err
	}
	if err := writeSheet(f, "KnowledgeBase", kbSheet(ds.Articles)); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i+1, name, err)
		}
	}
	return nil
}

func productSheet(ps []domain.Product) [][]any {
	rows := [][]any{{
		"product_id", "name", "category", "subcategory", "brand", "base_price",
		"discount_percent", "final_price", "currency", "stock_quantity",
		"in_stock", "rating", "num_reviews", "description", "tags",
		"created_date", "updated_date",
	}}
	for _, p := range ps {
		rows = append(rows, []any{
			p.ProductID, p.Name, p.Category, p.Subcategory, p.Brand, p.BasePrice,
			p.DiscountPercent, p.FinalPrice, p.Currency, p.StockQuantity,
			p.InStock, p.Rating, p.NumReviews, p.Description,
			strings.Join(p.Tags, ","),
			p.CreatedDate.Format(dateLayout), p.UpdatedDate.Format(dateLayout),
		})
	}
	return rows
}

func customerSheet(cs []domain.Customer) [][]any {
	rows := [][]any{{
		"customer_id", "name", "email", "phone", "country", "city",
		"signup_date", "last_login", "segment", "total_orders", "total_spent",
		"average_order_value", "preferred_categories", "is_premium",
		"email_subscribed", "churn_risk",
	}}
	for _, c := range cs {
		rows = append(rows, []any{
			c.CustomerID, c.Name, c.Email, c.Phone, c.Country, c.City,
			c.SignupDate.Format(dateLayout), c.LastLogin.Format(dateLayout),
			string(c.Segment), c.TotalOrders, c.TotalSpent, c.AverageOrderValue,
			strings.Join(c.PreferredCategories, ","), c.IsPremium,
			c.EmailSubscribed, string(c.ChurnRisk),
		})
	}
	return rows
}

func orderSheet(os_ []domain.Order) [][]any {
	rows := [][]any{{
		"order_id", "customer_id", "order_date", "status", "num_items",
		"subtotal", "tax", "shipping", "total", "payment_method",
		"shipping_address", "delivery_date",
	}}
	for _, o := range os_ {
		delivery := ""
		if o.DeliveryDate != nil {
			delivery = o.DeliveryDate.Format(dateTimeLayout)
		}
		rows = append(rows, []any{
			o.OrderID, o.CustomerID, o.OrderDate.Format(dateTimeLayout),
			string(o.Status), o.NumItems, o.Subtotal, o.Tax, o.Shipping,
			o.Total, o.PaymentMethod, o.ShippingAddress, delivery,
		})
	}
	return rows
}

func orderItemSheet(items []domain.OrderItem) [][]any {
	rows := [][]any{{"order_id", "product_id", "product_name", "quantity", "unit_price", "total_price"}}
	for _, it := range items {
		rows = append(rows, []any{it.OrderID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.TotalPrice})
	}
	return rows
}

func conversationSheet(cs []domain.SupportConversation) [][]any {
	rows := [][]any{{
		"conversation_id", "customer_id", "date", "channel", "issue_type",
		"customer_message", "agent_message", "agent_id", "sentiment", "outcome",
		"resolution_time_minutes", "satisfaction_score", "follow_up_needed",
	}}
	for _, c := range cs {
		rows = append(rows, []any{
			c.ConversationID, c.CustomerID, c.Date.Format(dateTimeLayout),
			c.Channel, string(c.IssueType), c.CustomerMessage, c.AgentMessage,
			c.AgentID, string(c.Sentiment), string(c.Outcome),
			c.ResolutionTimeMinutes, c.SatisfactionScore, c.FollowUpNeeded,
		})
	}
	return rows
}

func kbSheet(articles []domain.KBArticle) [][]any {
	rows := [][]any{{"doc_id", "category", "title", "content", "tags", "views", "helpful_votes"}}
	for _, a := range articles {
		rows = append(rows, []any{
			a.DocID, a.Category, a.Title, a.Content,
			strings.Join(a.Tags, ","), a.Views, a.HelpfulVotes,
		})
	}
	return rows
}
