package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workouthelper/internal/handlers"
	"workouthelper/internal/logger"
	"workouthelper/internal/repository"
	"workouthelper/internal/repository/db"
	"workouthelper/internal/server"
	"workouthelper/internal/service"

	_ "workouthelper/docs"

	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

// @title           WorkoutHelper API
// @version         1.0
// @description     REST backend for the WorkoutHelper fitness tracker.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	authCfg, err := authConfig()
	if err != nil {
		log.Fatalw("invalid auth config", "err", err)
	}

	repos := repository.NewRepository(conn)
	services := service.NewService(repos, authCfg)
	apiHandler := handlers.NewHandler(services, log)

	srv := &server.Server{}
	go func() {
		port := viper.GetString("port")
		if port == "" {
			port = "3003"
		}
		if err := srv.Run(port, apiHandler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// authConfig assembles the injected auth settings from configuration. The
// signing key has no fallback; running with an empty HMAC secret would make
// every token forgeable.
func authConfig() (service.Config, error) {
	key := viper.GetString("auth.signing_key")
	if key == "" {
		return service.Config{}, errors.New("auth.signing_key is not set in config")
	}
	ttl := viper.GetInt("auth.token_ttl_minutes")
	if ttl <= 0 {
		ttl = 60
	}
	return service.Config{
		SigningKey: key,
		TokenTTL:   time.Duration(ttl) * time.Minute,
		BcryptCost: viper.GetInt("auth.bcrypt_cost"),
	}, nil
}

func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "workouthelper.db")
		dbPath = "workouthelper.db"
	}
	return db.InitDB(dbPath)
}

// waitForShutdown blocks until a termination signal, then drains in-flight
// requests before exiting.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
