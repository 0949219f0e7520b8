package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andriikh/ecomgen/internal/domain"
)

const insertBatchSize = 500

// DatasetRepo loads a generated dataset into Postgres so course services can
// query it directly. Embeddings are not stored here; they ship as a blob file.
type DatasetRepo struct{ db *gorm.DB }

func NewDatasetRepo(db *gorm.DB) *DatasetRepo { return &DatasetRepo{db: db} }

func (r *DatasetRepo) Save(ctx context.Context, ds *domain.Dataset) error {
	db := r.db.WithContext(ctx)
	if err := db.AutoMigrate(
		&domain.Product{},
		&domain.Customer{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.SupportConversation{},
		&domain.KBArticle{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	if err := insert(db, "products", ds.Products); err != nil {
		return err
	}
	if err := insert(db, "customers", ds.Customers); err != nil {
		return err
	}
	if err := insert(db, "orders", ds.Orders); err != nil {
		return err
	}
	if err := insert(db, "order items", ds.OrderItems); err != nil {
		return err
	}
	if err := insert(db, "conversations", ds.Conversations); err != nil {
		return err
	}
	return insert(db, "kb articles", ds.Articles)
}

func insert[T any](db *gorm.DB, what string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := db.CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("insert %s: %w", what, err)
	}
	return nil
}
