package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"link-in-bio/pkg/cache"
	"link-in-bio/pkg/config"
	"link-in-bio/pkg/logging"
	"link-in-bio/pkg/middleware"
	"link-in-bio/pkg/rpc"
	"link-in-bio/pkg/service"
	"link-in-bio/pkg/storage"
	"link-in-bio/pkg/storage/memory"
	"link-in-bio/pkg/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(cfg.LogLevel)

	seed, err := storage.LoadSeed(cfg.SeedPath)
	if err != nil {
		log.Fatal(err)
	}

	// The fixture ships without password hashes; seeded accounts get a
	// development password so login works out of the box.
	seedPassword := os.Getenv("SEED_PASSWORD")
	if seedPassword == "" {
		seedPassword = "password123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	for i := range seed.Users {
		if seed.Users[i].PasswordHash == "" {
			seed.Users[i].PasswordHash = string(hash)
		}
	}

	// Link storage: Postgres when configured, otherwise the seeded
	// in-memory collection.
	var linkStore storage.LinkStore
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		linkStore = postgres.NewLinkStore(pool)
	} else {
		linkStore = memory.NewLinkStore(seed.Links)
	}

	pageStore := memory.NewPageStore(seed.Pages)
	userStore := memory.NewUserStore(seed.Users)

	// View counter: Redis when configured, in-process otherwise.
	var views cache.ViewCounter
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		client := redis.NewClient(opt)
		defer client.Close()
		views = cache.NewRedisViewCounter(client)
	} else {
		views = cache.NewMemoryViewCounter()
	}

	authmw := middleware.NewAuth(cfg.JWTSecret, cfg.TokenTTL)

	handler := rpc.NewHandler(
		service.NewLinkService(linkStore, logger),
		service.NewPageService(pageStore, views, logger),
		service.NewAuthService(userStore, authmw, logger),
		authmw,
		logger,
	)

	r := chi.NewRouter()
	rpc.SetupRoutes(r, handler)

	logger.Logger.Info("starting api server", "port", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
