package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/notaventas/backend/internal/infrastructure/config"
	"github.com/notaventas/backend/internal/infrastructure/logger"
	"github.com/notaventas/backend/internal/infrastructure/migration"
	"go.uber.org/zap"
)

func main() {
	var (
		migrationsPath = flag.String("path", "migrations", "directory containing migration files")
		steps          = flag.Int("steps", 0, "number of migrations to apply with the steps command")
		forceVersion   = flag.Int("version", -1, "version to set with the force command")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	appLogger, err := logger.NewForEnvironment(cfg.App.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer appLogger.Sync() //nolint:errcheck

	migrator, err := migration.NewFromURL(cfg.Database.DSN(), *migrationsPath, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize migrator", zap.Error(err))
	}
	defer migrator.Close() //nolint:errcheck

	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "steps":
		if *steps == 0 {
			appLogger.Fatal("steps requires a non-zero -steps value")
		}
		err = migrator.Steps(*steps)
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = migrator.Version()
		if err == nil {
			appLogger.Info("Current migration state",
				zap.Uint("version", version),
				zap.Bool("dirty", dirty))
		}
	case "force":
		if *forceVersion < 0 {
			appLogger.Fatal("force requires a -version value")
		}
		err = migrator.Force(*forceVersion)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		appLogger.Fatal("Migration command failed",
			zap.String("command", command),
			zap.Error(err))
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: migrate [flags] <command>

Commands:
  up        apply all pending migrations
  down      roll back the most recent migration
  steps     apply -steps migrations (negative rolls back)
  version   print the current migration version
  force     set the version without running migrations (recovery only)

Flags:
`)
	flag.PrintDefaults()
}
