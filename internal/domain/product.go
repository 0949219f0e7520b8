package domain

import (
	"time"
)

type Product struct {
	ProductID       string            `gorm:"primaryKey;size:20" json:"product_id"`
	Name            string            `gorm:"size:180" json:"name"`
	Category        string            `gorm:"size:100;index" json:"category"`
	Subcategory     string            `gorm:"size:100" json:"subcategory"`
	Brand           string            `gorm:"size:100" json:"brand"`
	BasePrice       float64           `gorm:"type:decimal(12,2)" json:"base_price"`
	DiscountPercent int               `gorm:"type:int" json:"discount_percent"`
	FinalPrice      float64           `gorm:"type:decimal(12,2)" json:"final_price"`
	Currency        string            `gorm:"size:3" json:"currency"`
	StockQuantity   int               `gorm:"type:int" json:"stock_quantity"`
	InStock         bool              `json:"in_stock"`
	Rating          float64           `gorm:"type:decimal(3,1)" json:"rating"`
	NumReviews      int               `gorm:"type:int" json:"num_reviews"`
	Description     string            `gorm:"type:text" json:"description"`
	Attributes      map[string]string `gorm:"type:jsonb;serializer:json" json:"attributes"`
	Tags            []string          `gorm:"type:jsonb;serializer:json" json:"tags"`
	CreatedDate     time.Time         `json:"created_date"`
	UpdatedDate     time.Time         `json:"updated_date"`
}

// EmbeddingDim is the length of every product embedding vector
// (all-MiniLM-L6-v2 dimension, kept for downstream RAG demos).
const EmbeddingDim = 384
