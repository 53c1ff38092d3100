package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/solaceapp/solace/internal/cli"
	"github.com/solaceapp/solace/internal/db"
	"github.com/solaceapp/solace/internal/recommend"
	"github.com/solaceapp/solace/internal/repository"
	"github.com/solaceapp/solace/internal/service"
	"github.com/solaceapp/solace/internal/strategy"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.solace/solace.db
	dbPath := os.Getenv("SOLACE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".solace", "solace.db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	entryRepo := repository.NewSQLiteEntryRepo(database)
	checkinRepo := repository.NewSQLiteCheckinRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	catalog := strategy.NewSeededCatalog()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	app := &cli.App{
		Entries:     service.NewEntryService(entryRepo, uow),
		Checkins:    service.NewCheckinService(checkinRepo),
		Recommender: service.NewRecommendService(catalog, recommend.NewDefaultMatcher(), rng),
		Backup:      service.NewBackupService(entryRepo, checkinRepo, uow),
		Catalog:     catalog,
	}

	// Detect interactive terminal for forms and the strategy browser.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
