package domain

type KBArticle struct {
	DocID        string   `gorm:"primaryKey;size:10" json:"doc_id"`
	Category     string   `gorm:"size:40;index" json:"category"`
	Title        string   `gorm:"size:180" json:"title"`
	Content      string   `gorm:"type:text" json:"content"`
	Tags         []string `gorm:"type:jsonb;serializer:json" json:"tags"`
	Views        int      `gorm:"type:int" json:"views"`
	HelpfulVotes int      `gorm:"type:int" json:"helpful_votes"`
}
