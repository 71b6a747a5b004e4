// @title        Hotel Management API
// @version      1.0
// @description  CRUD API for hotel rooms, users and reservations.
// @host         localhost:8081
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/skillstorm/hotel-management/internal/api"
	"github.com/skillstorm/hotel-management/internal/core/ports"
	"github.com/skillstorm/hotel-management/internal/core/service"
	"github.com/skillstorm/hotel-management/internal/infrastructure/cache"
	"github.com/skillstorm/hotel-management/internal/infrastructure/db/mongo"
	"github.com/skillstorm/hotel-management/internal/infrastructure/db/redis"
	"github.com/skillstorm/hotel-management/internal/pkg/config"
	"github.com/skillstorm/hotel-management/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hotel-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may be set by the runtime.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "hotel-api",
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	roomRepo := mongo.NewRoomRepository(db)
	userRepo := mongo.NewUserRepository(db)
	reservationRepo := mongo.NewReservationRepository(db)
	if err := mongo.EnsureIndexes(ctx, roomRepo, userRepo, reservationRepo); err != nil {
		return err
	}

	roomCache, rdb, err := buildCache(ctx, cfg, log)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := api.Dependencies{
		Rooms:        service.NewRoomService(roomRepo, roomCache, log),
		Users:        service.NewUserService(userRepo, cfg.BcryptCost, log),
		Reservations: service.NewReservationService(reservationRepo, log),
		Mongo:        mongoClient,
		Registry:     reg,
		Logger:       log,
		CORSOrigins:  cfg.CORSOrigins,
	}
	if rdb != nil {
		deps.Redis = rdb
	}

	e, err := api.NewRouter(deps)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := e.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
		if rdb != nil {
			if err := rdb.Close(); err != nil {
				errs = append(errs, fmt.Errorf("redis close: %w", err))
			}
		}
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("mongo disconnect: %w", err))
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

// buildCache returns the room cache selected by CACHE_DRIVER and, for the
// redis driver, the client so it can be health checked and closed.
func buildCache(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.Cache, *goredis.Client, error) {
	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("room cache: redis")
		return redis.NewCache(rdb, cfg.Cache.TTL, log), rdb, nil
	case config.CacheDriverMemory:
		log.Info().Dur("ttl", cfg.Cache.TTL).Msg("room cache: memory")
		return cache.NewMemory(cfg.Cache.TTL, 2*cfg.Cache.TTL), nil, nil
	default:
		log.Info().Msg("room cache disabled")
		return nil, nil, nil
	}
}
