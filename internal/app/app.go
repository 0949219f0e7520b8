package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/andriikh/ecomgen/internal/adapters/repo/postgres"
	"github.com/andriikh/ecomgen/internal/adapters/writer"
	"github.com/andriikh/ecomgen/internal/config"
	"github.com/andriikh/ecomgen/internal/domain"
	"github.com/andriikh/ecomgen/internal/rng"
	"github.com/andriikh/ecomgen/internal/usecase"
)

// App wires the generation pipeline to its writers. DB is optional; when set
// the dataset is also loaded into Postgres.
type App struct {
	Cfg *config.Config
	DB  *gorm.DB
	Log zerolog.Logger
}

func New(cfg *config.Config, db *gorm.DB, log zerolog.Logger) *App {
	return &App{Cfg: cfg, DB: db, Log: log}
}

// Run generates the dataset, persists every table and writes the manifest.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()
	pipe := &usecase.Pipeline{Rand: rng.New(a.Cfg.Seed), Log: a.Log}
	ds, err := pipe.Run(usecase.Counts{
		Products:      a.Cfg.Products,
		Customers:     a.Cfg.Customers,
		Orders:        a.Cfg.Orders,
		Conversations: a.Cfg.Conversations,
	}, start)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.Cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files, err := a.persist(ds)
	if err != nil {
		return err
	}

	if a.DB != nil {
		if err := postgres.NewDatasetRepo(a.DB).Save(ctx, ds); err != nil {
			return fmt.Errorf("load dataset into postgres: %w", err)
		}
		a.Log.Info().Msg("dataset loaded into postgres")
	}

	revenue, avg := usecase.RevenueStats(ds.Orders)
	manifest := domain.Manifest{
		RunID:         uuid.NewString(),
		Seed:          a.Cfg.Seed,
		GeneratedAt:   start,
		Products:      len(ds.Products),
		Customers:     len(ds.Customers),
		Orders:        len(ds.Orders),
		OrderItems:    len(ds.OrderItems),
		Conversations: len(ds.Conversations),
		KBArticles:    len(ds.Articles),
		Embeddings:    len(ds.Embeddings),
		TotalRevenue:  usecase.Round2(revenue),
		AvgOrderValue: usecase.Round2(avg),
		Files:         files,
	}
	manifestPath, err := writer.NewJSON(a.Cfg.OutputDir).WriteManifest(manifest)
	if err != nil {
		return err
	}

	a.Log.Info().
		Str("run_id", manifest.RunID).
		Int64("seed", manifest.Seed).
		Str("output", a.Cfg.OutputDir).
		Str("manifest", manifestPath).
		Dur("elapsed", time.Since(start)).
		Float64("total_revenue", manifest.TotalRevenue).
		Float64("avg_order_value", manifest.AvgOrderValue).
		Msg("data generation complete")
	return nil
}

// persist writes every table and returns the list of written files.
func (a *App) persist(ds *domain.Dataset) ([]string, error) {
	csvW := writer.NewCSV(a.Cfg.OutputDir)
	jsonW := writer.NewJSON(a.Cfg.OutputDir)

	var files []string
	steps := []func() (string, error){
		func() (string, error) { return csvW.WriteProducts(ds.Products) },
		func() (string, error) { return jsonW.WriteProducts(ds.Products) },
		func() (string, error) { return csvW.WriteCustomers(ds.Customers) },
		func() (string, error) { return csvW.WriteOrders(ds.Orders) },
		func() (string, error) { return csvW.WriteOrderItems(ds.OrderItems) },
		func() (string, error) { return csvW.WriteConversations(ds.Conversations) },
		func() (string, error) { return csvW.WriteKB(ds.Articles) },
		func() (string, error) { return jsonW.WriteKB(ds.Articles) },
	}
	for _, step := range steps {
		path, err := step()
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}

	blobPath := filepath.Join(a.Cfg.OutputDir, "product_embeddings.bin")
	if err := writer.SaveEmbeddings(blobPath, ds.Embeddings); err != nil {
		return nil, err
	}
	files = append(files, blobPath)

	if a.Cfg.Excel {
		bookPath := filepath.Join(a.Cfg.OutputDir, "dataset.xlsx")
		if err := writer.WriteWorkbook(bookPath, ds); err != nil {
			return nil, err
		}
		files = append(files, bookPath)
		a.Log.Info().Str("workbook", bookPath).Msg("excel workbook written")
	}
	return files, nil
}
