package domain

import (
	"time"
)

type Segment string

const (
	SegmentHighValue  Segment = "high_value"
	SegmentRegular    Segment = "regular"
	SegmentOccasional Segment = "occasional"
	SegmentNew        Segment = "new"
)

type ChurnRisk string

const (
	ChurnLow    ChurnRisk = "low"
	ChurnMedium ChurnRisk = "medium"
	ChurnHigh   ChurnRisk = "high"
)

type Customer struct {
	CustomerID          string    `gorm:"primaryKey;size:20" json:"customer_id"`
	Name                string    `gorm:"size:140" json:"name"`
	Email               string    `gorm:"size:140" json:"email"`
	Phone               string    `gorm:"size:60" json:"phone"`
	Country             string    `gorm:"size:80" json:"country"`
	City                string    `gorm:"size:80" json:"city"`
	SignupDate          time.Time `json:"signup_date"`
	LastLogin           time.Time `json:"last_login"`
	Segment             Segment   `gorm:"type:varchar(20);index" json:"segment"`
	TotalOrders         int       `gorm:"type:int" json:"total_orders"`
	TotalSpent          float64   `gorm:"type:decimal(12,2)" json:"total_spent"`
	AverageOrderValue   float64   `gorm:"type:decimal(12,2)" json:"average_order_value"`
	PreferredCategories []string  `gorm:"type:jsonb;serializer:json" json:"preferred_categories"`
	IsPremium           bool      `json:"is_premium"`
	EmailSubscribed     bool      `json:"email_subscribed"`
	ChurnRisk           ChurnRisk `gorm:"type:varchar(10)" json:"churn_risk"`
}
