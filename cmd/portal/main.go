// @title        Campus Portal API
// @version      1.0
// @description  Role-gated staff and student records with a single persisted session.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/campusdesk/portal/internal/api"
	"github.com/campusdesk/portal/internal/core/ports"
	"github.com/campusdesk/portal/internal/core/service"
	"github.com/campusdesk/portal/internal/infrastructure/config"
	"github.com/campusdesk/portal/internal/infrastructure/db/guard"
	"github.com/campusdesk/portal/internal/infrastructure/db/memory"
	"github.com/campusdesk/portal/internal/infrastructure/db/mongo"
	"github.com/campusdesk/portal/internal/infrastructure/db/postgres"
	"github.com/campusdesk/portal/internal/infrastructure/db/redis"
	"github.com/campusdesk/portal/internal/infrastructure/seed"
	"github.com/campusdesk/portal/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "campus-portal",
		Env:     cfg.Env,
	})

	ctx := context.Background()

	ds, err := seed.Load(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Str("seed_file", cfg.SeedFile).Msg("seed load failed")
	}

	backend, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("durable store connect failed")
	}
	defer closeStore()
	log.Info().Str("backend", cfg.Store.Backend).Str("namespace", cfg.Store.Namespace).Msg("durable store connected")

	var store *guard.Store
	if cfg.Store.Breaker {
		store = guard.New(backend, cfg.Store.Namespace, guard.NewCircuitBreaker("durable-store", 10*time.Second, log))
	} else {
		store = guard.New(backend, cfg.Store.Namespace, nil)
	}

	ids := service.NewIDGenerator(cfg.IDStrategy)
	credentials := service.NewCredentialStore(ctx, store, ds.Users, componentLogger(log, "credentials"))
	sessions := service.NewSessionService(ctx, store, credentials, ids, componentLogger(log, "session"))
	employees := service.NewEmployeeService(ctx, store, ds.Employees, ids, componentLogger(log, "employees"))
	students := service.NewStudentService(ctx, store, ds.Students, ids, componentLogger(log, "students"))
	departments := service.NewDepartmentDirectory(ds.Departments, employees)

	e := api.NewRouter(api.Deps{
		Sessions:    sessions,
		Employees:   employees,
		Students:    students,
		Departments: departments,
		Ready:       map[string]ports.Pinger{cfg.Store.Backend: store},
	}, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("portal api starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("portal api start failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("portal api stopped")
}

func componentLogger(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// openStore connects the configured backend and returns it with its
// release function.
func openStore(ctx context.Context, cfg *config.Config) (ports.DurableStore, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return redis.NewStore(client), func() { _ = client.Close() }, nil

	case config.BackendMongo:
		store, release, err := mongo.Open(ctx, mongo.Config{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, release, nil

	case config.BackendPostgres:
		pool, err := postgres.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}
		store := postgres.NewStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil

	default:
		return memory.NewStore(), func() {}, nil
	}
}
