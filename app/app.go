package app

import (
	"os"
	"os/signal"
	"procurement-portal/internal/config"
	"procurement-portal/internal/controller"
	"procurement-portal/internal/mailer"
	"procurement-portal/internal/repo"
	"procurement-portal/internal/service"
	"procurement-portal/pkg/http_server"
	"procurement-portal/pkg/logger"
	"procurement-portal/pkg/postgres"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

func runMigrations(postgresDB *postgres.Postgres, sourceUrl string, log *zap.Logger) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{})
	if err != nil {
		log.Fatal("creating migration driver", zap.Error(err))
	}

	migrations, err := migrate.NewWithDatabaseInstance(sourceUrl, "postgres", driver)
	if err != nil {
		log.Fatal("loading migrations", zap.Error(err))
	}

	if err := migrations.Up(); err != nil {
		if err == migrate.ErrNoChange {
			log.Info("no change made by migration scripts")
		} else {
			log.Fatal("running migrations", zap.Error(err))
		}
	}
}

func Run() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("connecting database")
	postgresDB, err := postgres.NewDB(cfg.PostgresURL)
	if err != nil {
		log.Fatal("connecting to db", zap.Error(err))
	}
	defer postgresDB.Close()

	log.Info("running migrations")
	runMigrations(postgresDB, cfg.MigrationsURL, log)

	repositories := repo.NewRepositories(postgresDB)
	gateway := mailer.New(repositories.EmailConfig, log)
	services := service.NewServices(&service.Deps{
		Repos:     repositories,
		Mailer:    gateway,
		Logger:    log,
		JWTSecret: cfg.JWTSecret,
	})

	handler := echo.New()

	log.Info("setting up routes")
	controller.SetupRoutesHandlers(handler, services, cfg, log)

	log.Info("starting server", zap.String("address", cfg.ServerAddress))
	httpServer := http_server.New(handler, cfg.ServerAddress)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("got signal", zap.String("signal", s.String()))
	case err = <-httpServer.Notify():
		log.Error("server stopped", zap.Error(err))
	}

	log.Info("shutting down")
	if err = httpServer.Shutdown(); err != nil {
		log.Error("shutdown error", zap.Error(err))
	} else {
		log.Info("successful shutdown")
	}
}
