package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/andriikh/ecomgen/internal/adapters/catalogfile"
	"github.com/andriikh/ecomgen/internal/chat"
	"github.com/andriikh/ecomgen/internal/domain"
)

func main() {
	_ = godotenv.Load()

	var dataDir string
	flag.StringVar(&dataDir, "data", "data", "Directory containing products.csv")
	flag.Parse()

	var products []domain.Product
	summary := ""
	loaded, err := catalogfile.Load(filepath.Join(dataDir, "products.csv"))
	if err != nil {
		// Missing data is a warning, not a failure: the demo starts with an
		// empty result set and tells the user to run the generator.
		summary = fmt.Sprintf("Warning: %v", err)
	} else {
		products = loaded
		summary = fmt.Sprintf("Loaded %d products from %s", len(products), dataDir)
	}

	model := chat.New(chat.NewService(products), summary)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Printf("chat demo exited with error: %v", err)
		os.Exit(1)
	}
}
