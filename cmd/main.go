package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/eaglebank/account-grpc/internal/config"
	"github.com/eaglebank/account-grpc/internal/events"
	"github.com/eaglebank/account-grpc/internal/gateway"
	"github.com/eaglebank/account-grpc/internal/handler"
	"github.com/eaglebank/account-grpc/internal/logger"
	redisClient "github.com/eaglebank/account-grpc/internal/redis"
	"github.com/eaglebank/account-grpc/internal/repository"
	"github.com/eaglebank/account-grpc/internal/server"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store gateway.AccountStore
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store = repository.NewMemoryAccountRepository()
	default:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		store = repository.NewAccountRepository(db)
	}

	g, ctx := errgroup.WithContext(ctx)

	// Redis is optional: read-through cache plus account.saved stream
	if cfg.RedisEnabled() {
		redis, err := redisClient.NewClient(ctx, redisClient.Options{
			Addr:       cfg.RedisAddr,
			Password:   cfg.RedisPassword,
			DB:         cfg.RedisDB,
			InstanceID: cfg.InstanceID,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redis.Close()

		cached := repository.NewCachedAccountRepository(store, redis.Client, cfg.CacheTTL, events.NewPublisher(redis.Client, cfg.EventsMaxLen))
		store = cached

		// one group per instance so every replica sees every save
		subscriber := events.NewSubscriber(redis.Client, events.SubscriberConfig{
			Group:    "account-cache-" + cfg.InstanceID,
			Consumer: cfg.InstanceID,
			Stream:   events.AccountEventsStream,
			StartID:  "$",
			Handler:  cached.HandleAccountEvent,
		})
		g.Go(func() error {
			if err := subscriber.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("subscriber stopped", err, nil)
				return nil
			}

			// the group is private to this instance
			destroyCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := subscriber.DestroyGroup(destroyCtx); err != nil {
				logger.Error("failed to remove consumer group", err, nil)
			}
			return nil
		})
	}

	var opts []gateway.Option
	if cfg.StatsPrecision == config.PrecisionExact {
		opts = append(opts, gateway.WithStats(gateway.ExactStats))
	}
	accountGateway := gateway.NewAccountGateway(store, opts...)

	grpcServer, healthServer := server.NewGRPCServer(accountGateway)

	router := gin.New()
	router.Use(gin.Recovery(), handler.LoggingMiddleware())
	handler.NewAccountHandler(accountGateway).Register(router)
	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
		if err != nil {
			return err
		}
		logger.Info("grpc server starting", logger.Fields{"port": cfg.GRPCPort, "store": cfg.StoreDriver})
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		logger.Info("http server starting", logger.Fields{"port": cfg.HTTPPort})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down...")
		healthServer.Shutdown()
		grpcServer.GracefulStop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
