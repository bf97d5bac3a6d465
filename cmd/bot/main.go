package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/zeyaad-amr/adt-bot/internal/config"
	"github.com/zeyaad-amr/adt-bot/internal/database"
	"github.com/zeyaad-amr/adt-bot/internal/domain/service"
	"github.com/zeyaad-amr/adt-bot/internal/logger"
	slackgw "github.com/zeyaad-amr/adt-bot/internal/slack"
	"github.com/zeyaad-amr/adt-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logg := logger.New(cfg.LogLevel, cfg.Environment)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logg.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	logg.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logg.Fatalf("Failed to run migrations: %v", err)
	}

	gateway := slackgw.New(cfg, logg)
	services := service.NewInstance(cfg, gateway, gateway, database.NewInstance(db), logg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services.Router.Start(ctx)
	logg.WithField("timezone", cfg.Timezone).Info("Trigger loops started")

	if err := gateway.Run(ctx, services.Router.HandleInbound); err != nil && ctx.Err() == nil {
		logg.WithError(err).Error("Socket mode connection ended")
	}

	stop()
	services.Router.Wait()
	logg.Info("Shutdown complete")
}
