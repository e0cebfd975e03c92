package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/aisharahman/gradpath/internal/cli"
	"github.com/aisharahman/gradpath/internal/db"
	"github.com/aisharahman/gradpath/internal/repository"
	"github.com/aisharahman/gradpath/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.gradpath/gradpath.db
	dbPath := os.Getenv("GRADPATH_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dir := filepath.Join(home, ".gradpath")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		dbPath = filepath.Join(dir, "gradpath.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	repos := func(dbtx db.DBTX) repository.PlanRepo {
		return repository.NewSQLitePlanRepo(dbtx)
	}

	// Use-case telemetry goes to stderr when GRADPATH_LOG is set.
	observer := service.UseCaseObserver(service.NoopUseCaseObserver{})
	if os.Getenv("GRADPATH_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	planSvc := service.NewPlanService(uow, repos, observer)

	app := &cli.App{
		Plans:     planSvc,
		Audits:    service.NewAuditService(uow, repos, observer),
		Status:    service.NewStatusService(planSvc),
		Transfers: service.NewTransferService(uow, repos, observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
