package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/m04kA/SMC-BarbershopService/internal/config"
	"github.com/m04kA/SMC-BarbershopService/migrations"
	"github.com/m04kA/SMC-BarbershopService/pkg/logger"
	"github.com/m04kA/SMC-BarbershopService/pkg/migrator"
)

func main() {
	var (
		configPath = flag.String("config", "config.toml", "path to the TOML config file")
		down       = flag.Bool("down", false, "roll back the last migration instead of applying new ones")
		version    = flag.Bool("version", false, "print the current schema version and exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Логи миграций всегда в stdout
	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, log, *down, *version); err != nil {
		log.Error("Migration failed: %v", err)
		_ = log.Close()
		os.Exit(1)
	}
	_ = log.Close()
}

func run(cfg *config.Config, log *logger.Logger, down, version bool) error {
	mg, err := migrator.New(migrations.FS, cfg.Database.URL(), log)
	if err != nil {
		return err
	}
	defer mg.Close()

	switch {
	case version:
		v, dirty, err := mg.Version()
		if err != nil {
			return err
		}
		log.Info("Schema version=%d, dirty=%t (db=%s)", v, dirty, cfg.Database.DBName)
		return nil

	case down:
		return mg.Down()

	default:
		return mg.Up()
	}
}
