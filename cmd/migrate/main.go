package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/crm/backend/internal/infrastructure/config"
	"github.com/crm/backend/internal/infrastructure/logger"
	"github.com/crm/backend/internal/infrastructure/migration"
)

func main() {
	var (
		direction = flag.String("direction", "up", "up, down or version")
		steps     = flag.Int("steps", 0, "apply a fixed number of steps instead")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.Logger.Level, Format: "console"})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	migrator, err := migration.New(db, cfg.Database.MigrationsPath, log)
	if err != nil {
		log.Fatal("failed to create migrator", zap.Error(err))
	}

	switch {
	case *steps != 0:
		err = migrator.Steps(*steps)
	case *direction == "up":
		err = migrator.Up()
	case *direction == "down":
		err = migrator.Down()
	case *direction == "version":
		var version uint
		var dirty bool
		version, dirty, err = migrator.Version()
		if err == nil {
			log.Info("schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		}
	default:
		log.Fatal("unknown direction", zap.String("direction", *direction))
	}
	if err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
}
