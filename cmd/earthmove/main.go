package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/earthmove/internal/cli"
	"github.com/alexanderramin/earthmove/internal/config"
	"github.com/alexanderramin/earthmove/internal/db"
	"github.com/alexanderramin/earthmove/internal/repository"
	"github.com/alexanderramin/earthmove/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	movementRepo := repository.NewSQLiteMovementRepo(database)
	auditRepo := repository.NewSQLiteAuditRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	movements := service.NewMovementService(movementRepo, auditRepo, uow, observer)
	app := &cli.App{
		Movements: movements,
		Reports:   service.NewReportService(movementRepo, cfg.Delimiter, observer),
		Import:    service.NewImportService(movements, cfg.Delimiter, observer),
	}

	// Detect interactive terminal for the menu entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
