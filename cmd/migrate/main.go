package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/migration"
)

func main() {
	var (
		migrationsPath = flag.String("path", "", "Path to migration files (default: ./migrations)")
		logLevel       = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	command := flag.Arg(0)

	log, err := logger.New(&logger.Config{
		Level:  *logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	path := *migrationsPath
	if path == "" {
		path = "./migrations"
		if _, err := os.Stat(path); os.IsNotExist(err) {
			// Fall back to migrations next to the executable
			exe, err := os.Executable()
			if err == nil {
				path = filepath.Join(filepath.Dir(exe), "migrations")
			}
		}
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Fatal("Failed to resolve migrations path", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database connection", zap.Error(err))
	}

	migrator, err := migration.New(db, absPath, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Error("Error closing migrator", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		if err := migrator.Up(); err != nil {
			log.Fatal("Migration up failed", zap.Error(err))
		}
	case "down":
		if err := migrator.Down(); err != nil {
			log.Fatal("Migration down failed", zap.Error(err))
		}
	case "step":
		if flag.NArg() < 2 {
			log.Fatal("step requires a number of migrations, e.g. 'step 1' or 'step -1'")
		}
		n, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			log.Fatal("Invalid step count", zap.String("arg", flag.Arg(1)))
		}
		if err := migrator.Steps(n); err != nil {
			log.Fatal("Migration steps failed", zap.Error(err))
		}
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			log.Fatal("Failed to get migration version", zap.Error(err))
		}
		log.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
	case "force":
		if flag.NArg() < 2 {
			log.Fatal("force requires a version number, e.g. 'force 1'")
		}
		version, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			log.Fatal("Invalid version", zap.String("arg", flag.Arg(1)))
		}
		if err := migrator.Force(version); err != nil {
			log.Fatal("Failed to force migration version", zap.Error(err))
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Database migration tool

Usage:
  migrate [flags] <command>

Commands:
  up          Apply all pending migrations
  down        Roll back all migrations
  step <n>    Apply n migrations (negative rolls back)
  version     Print the current migration version
  force <v>   Set the migration version without running migrations

Flags:
`)
	flag.PrintDefaults()
}
