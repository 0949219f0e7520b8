package domain

import (
	"time"
)

type IssueType string

const (
	IssueProductInquiry IssueType = "product_inquiry"
	IssueOrderStatus    IssueType = "order_status"
	IssueReturnRequest  IssueType = "return_request"
	IssueTechnical      IssueType = "technical_issue"
	IssuePriceInquiry   IssueType = "price_inquiry"
	IssueRecommendation IssueType = "recommendation"
)

// IssueTypes fixes the sampling order over issue categories.
var IssueTypes = []IssueType{
	IssueProductInquiry,
	IssueOrderStatus,
	IssueReturnRequest,
	IssueTechnical,
	IssuePriceInquiry,
	IssueRecommendation,
}

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type Outcome string

const (
	OutcomeResolved  Outcome = "resolved"
	OutcomeEscalated Outcome = "escalated"
	OutcomePending   Outcome = "pending"
)

type SupportConversation struct {
	ConversationID        string    `gorm:"primaryKey;size:20" json:"conversation_id"`
	CustomerID            string    `gorm:"size:20;index" json:"customer_id"`
	Date                  time.Time `json:"date"`
	Channel               string    `gorm:"size:10" json:"channel"`
	IssueType             IssueType `gorm:"type:varchar(30);index" json:"issue_type"`
	CustomerMessage       string    `gorm:"type:text" json:"customer_message"`
	AgentMessage          string    `gorm:"type:text" json:"agent_message"`
	AgentID               string    `gorm:"size:10" json:"agent_id"`
	Sentiment             Sentiment `gorm:"type:varchar(10)" json:"sentiment"`
	Outcome               Outcome   `gorm:"type:varchar(10)" json:"outcome"`
	ResolutionTimeMinutes int       `gorm:"type:int" json:"resolution_time_minutes"`
	SatisfactionScore     int       `gorm:"type:int" json:"satisfaction_score"`
	FollowUpNeeded        bool      `json:"follow_up_needed"`
}
