package main

import (
	"context"
	_ "time/tzdata"

	"github.com/vfg2006/budget-guard-api/infrastructure/database/migrations"
	"github.com/vfg2006/budget-guard-api/infrastructure/database/postgres"
	"github.com/vfg2006/budget-guard-api/infrastructure/repository"
	"github.com/vfg2006/budget-guard-api/internal/api"
	"github.com/vfg2006/budget-guard-api/internal/config"
	"github.com/vfg2006/budget-guard-api/internal/scheduler"
	"github.com/vfg2006/budget-guard-api/internal/usecases/authenticating"
	"github.com/vfg2006/budget-guard-api/internal/usecases/enforcing"
	"github.com/vfg2006/budget-guard-api/internal/usecases/managing"
	"github.com/vfg2006/budget-guard-api/internal/usecases/spending"
	"github.com/vfg2006/budget-guard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.WithFields(log.Fields{
		"timezone":  cfg.App.Location.String(),
		"log_level": cfg.App.LogLevel,
	}).Info("Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.RunMigrations {
		if err := migrations.Up(cfg.Database.DSN); err != nil {
			log.Fatal(err)
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	brandRepo := repository.NewBrandRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	scheduleRepo := repository.NewScheduleRepository(pgConn)
	spendRepo := repository.NewSpendRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)

	clock := cfg.App.Now

	enforcer := enforcing.NewService(snapshotRepo, campaignRepo, clock)
	spendService := spending.NewService(spendRepo, campaignRepo, brandRepo, snapshotRepo, enforcer, clock)
	managingService := managing.NewService(brandRepo, campaignRepo, scheduleRepo, enforcer, clock)
	authenticator := authenticating.NewService(cfg.Auth)

	jobs := scheduler.NewManager(enforcer, spendService, cfg)
	if err := jobs.Start(ctx); err != nil {
		log.L.WithError(err).Error("Failed to start schedulers")
		log.Fatal(err)
	}

	server, err := api.New(cfg, api.Services{
		Managing:      managingService,
		Spending:      spendService,
		Enforcer:      enforcer,
		Jobs:          jobs,
		Authenticator: authenticator,
		Database:      pgConn,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("Server exited with error")
	}
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Error("Failed to connect to PostgreSQL")
		log.Fatal(err)
	}

	log.L.Info("PostgreSQL connection established")
	return conn
}
