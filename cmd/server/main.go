package main

import (
	"database/sql"
	"flag"
	"log/slog"
	"os"

	_ "github.com/lib/pq"
	"github.com/usbtypec1/car-wash-project-api-server/internal/config"
	"github.com/usbtypec1/car-wash-project-api-server/internal/notify"
	"github.com/usbtypec1/car-wash-project-api-server/internal/server"
	"github.com/usbtypec1/car-wash-project-api-server/internal/storage"
	"github.com/usbtypec1/car-wash-project-api-server/lib/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "apply migrations and exit")
	flag.Parse()

	cfg := config.NewConfig()
	slog.SetDefault(logger.New(cfg.Env))

	db, err := sql.Open(storage.PgxDriverType, cfg.DbPath)
	if err != nil {
		slog.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	store := storage.NewStorage(storage.StorageOpts{
		Database:   db,
		DriverType: storage.PgxDriverType,
		DriverPath: cfg.DbPath,
	})

	if *migrateOnly {
		if err := store.Migrate(cfg.MigrationsPath); err != nil {
			slog.Error("failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Info("migrations applied", slog.String("path", cfg.MigrationsPath))
		return
	}

	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.TelegramToken != "" {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramToken)
		if err != nil {
			slog.Error("failed to init telegram notifier", slog.String("error", err.Error()))
			os.Exit(1)
		}
		notifier = tg
	} else {
		slog.Warn("TELEGRAM_BOT_TOKEN is empty, staff notifications are disabled")
	}

	srv := server.NewServer(server.ServerOpts{
		Storage:  store,
		Notifier: notifier,
		Config:   cfg,
	})

	if err := srv.Run(cfg.Listen); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
