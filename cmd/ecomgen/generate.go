package main

import (
	"os"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/andriikh/ecomgen/internal/app"
	"github.com/andriikh/ecomgen/internal/config"
)

var genFlags struct {
	products      int
	customers     int
	orders        int
	conversations int
	seed          int64
	output        string
	configPath    string
	excel         bool
	dsn           string
}

var rootCmd = &cobra.Command{
	Use:   "ecomgen [command]",
	Short: "Synthetic e-commerce dataset generator for MLOps coursework",
	Long: `Generates a mutually consistent e-commerce dataset: product catalog,
customers, orders with line items, support conversations, a knowledge base
and mock product embeddings. A fixed seed makes the whole run reproducible.`,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full dataset and write it to the output directory",
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&genFlags.products, "products", 500, "Number of products to generate")
	generateCmd.Flags().IntVar(&genFlags.customers, "customers", 5000, "Number of customers to generate")
	generateCmd.Flags().IntVar(&genFlags.orders, "orders", 10000, "Number of orders to generate")
	generateCmd.Flags().IntVar(&genFlags.conversations, "conversations", 2000, "Upper bound on support conversations")
	generateCmd.Flags().Int64Var(&genFlags.seed, "seed", 42, "Random seed for reproducibility")
	generateCmd.Flags().StringVarP(&genFlags.output, "output", "o", "data", "Output directory")
	generateCmd.Flags().StringVar(&genFlags.configPath, "config", "", "Path to YAML config (flags override it)")
	generateCmd.Flags().BoolVar(&genFlags.excel, "excel", false, "Also export the dataset as an xlsx workbook")
	generateCmd.Flags().StringVar(&genFlags.dsn, "dsn", "", "Postgres DSN to load the dataset into (or DB_DSN env)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if genFlags.configPath != "" {
		loaded, err := config.Load(genFlags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Explicitly set flags win over the config file.
	flags := cmd.Flags()
	if flags.Changed("products") {
		cfg.Products = genFlags.products
	}
	if flags.Changed("customers") {
		cfg.Customers = genFlags.customers
	}
	if flags.Changed("orders") {
		cfg.Orders = genFlags.orders
	}
	if flags.Changed("conversations") {
		cfg.Conversations = genFlags.conversations
	}
	if flags.Changed("seed") {
		cfg.Seed = genFlags.seed
	}
	if flags.Changed("output") {
		cfg.OutputDir = genFlags.output
	}
	if flags.Changed("excel") {
		cfg.Excel = genFlags.excel
	}
	if flags.Changed("dsn") {
		cfg.DSN = genFlags.dsn
	}
	if cfg.DSN == "" {
		cfg.DSN = os.Getenv("DB_DSN")
	}

	var db *gorm.DB
	if cfg.DSN != "" {
		var err error
		db, err = gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
		if err != nil {
			zlog.Fatal().Err(err).Msg("failed to connect to database")
		}
	}

	return app.New(cfg, db, zlog.Logger).Run(cmd.Context())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		zlog.Fatal().Err(err).Msg("generation failed")
	}
}
