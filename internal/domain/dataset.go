package domain

import (
	"time"
)

// Dataset is the fully materialized output of one generation run. Tables are
// produced in dependency order and never mutated after their stage completes.
type Dataset struct {
	Products      []Product
	Customers     []Customer
	Orders        []Order
	OrderItems    []OrderItem
	Conversations []SupportConversation
	Articles      []KBArticle
	// Embeddings maps product_id to an L2-normalized vector of EmbeddingDim.
	Embeddings map[string][]float32
}

// Manifest records the identity and headline statistics of a generation run.
type Manifest struct {
	RunID         string    `json:"run_id"`
	Seed          int64     `json:"seed"`
	GeneratedAt   time.Time `json:"generated_at"`
	Products      int       `json:"products"`
	Customers     int       `json:"customers"`
	Orders        int       `json:"orders"`
	OrderItems    int       `json:"order_items"`
	Conversations int       `json:"conversations"`
	KBArticles    int       `json:"kb_articles"`
	Embeddings    int       `json:"embeddings"`
	TotalRevenue  float64   `json:"total_revenue"`
	AvgOrderValue float64   `json:"avg_order_value"`
	Files         []string  `json:"files"`
}
