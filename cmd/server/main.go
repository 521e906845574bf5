package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/avelinom/vidgate/internal/api"
	"github.com/avelinom/vidgate/internal/config"
	"github.com/avelinom/vidgate/internal/logging"
	mongorepo "github.com/avelinom/vidgate/internal/repository/mongo"
	redisrepo "github.com/avelinom/vidgate/internal/repository/redis"
	"github.com/avelinom/vidgate/internal/service"
)

func main() {
	// Load .env file - try multiple locations
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logging.Setup(cfg.Logging); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Msg("Starting VidGate API server")

	// Initialize MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	db, err := mongorepo.NewClient(ctx, cfg.Mongo)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer db.Close(context.Background())

	if err := bootstrap(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap store")
	}

	// Initialize Redis; the API degrades gracefully without it
	redisClient, err := redisrepo.NewClient(cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without cache and rate limiting")
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	router := api.NewRouter(cfg, db, redisClient)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// bootstrap creates indexes and seeds the catalog when it is empty.
func bootstrap(db *mongorepo.Client, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	if err := mongorepo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}

	inserted, err := mongorepo.NewVideoRepository(db).SeedIfEmpty(ctx, service.SampleCatalog(cfg.Catalog.ThumbBaseURL))
	if err != nil {
		return err
	}
	if inserted > 0 {
		log.Info().Int64("videos", inserted).Msg("Seeded empty catalog")
	}

	return nil
}
