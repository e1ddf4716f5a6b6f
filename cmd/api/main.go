package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/graph-gophers/graphql-go/relay"
	goredis "github.com/redis/go-redis/v9"

	"github.com/josh-kwaku/bank-service/internal/config"
	"github.com/josh-kwaku/bank-service/internal/events"
	"github.com/josh-kwaku/bank-service/internal/graph"
	"github.com/josh-kwaku/bank-service/internal/handler"
	"github.com/josh-kwaku/bank-service/internal/logging"
	"github.com/josh-kwaku/bank-service/internal/middleware"
	"github.com/josh-kwaku/bank-service/internal/repository"
	"github.com/josh-kwaku/bank-service/internal/seed"
	"github.com/josh-kwaku/bank-service/internal/service"
)

type eventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

func main() {
	if err := run(); err != nil {
		slog.Error("bank-api exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init("bank-api", cfg.LogLevel, cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repository.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.Pool())
	if err != nil {
		return err
	}
	defer db.Close()

	accounts := repository.NewBankAccountRepository(db)
	customers := repository.NewCustomerRepository(db)

	var (
		publisher   eventPublisher = events.NopPublisher{}
		redisHealth handler.PingFunc
	)
	if cfg.EventsEnabled() {
		client, err := events.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer client.Close()
		publisher = events.NewPublisher(client, cfg.EventStreamMaxLen)
		redisHealth = redisPing(client)
		slog.Info("account events enabled", "redis_addr", cfg.RedisAddr, "stream", events.AccountEventsStream)
	}

	if cfg.SeedOnStart {
		if _, err := seed.Run(ctx, customers, accounts, seed.Options{}); err != nil {
			return err
		}
	}

	accountSvc := service.NewAccountService(accounts, publisher, cfg.PreserveCreatedAtOnUpdate)
	schema, err := graph.NewSchema(graph.NewResolver(accounts, customers, accountSvc), cfg.GraphQLMaxDepth)
	if err != nil {
		return err
	}

	health := handler.NewHealthHandler(db, nil)
	if redisHealth != nil {
		health = handler.NewHealthHandler(db, redisHealth)
	}
	accountHandler := handler.NewAccountHandler(accounts, customers)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health.Liveness)
	mux.HandleFunc("GET /health/ready", health.Readiness)
	mux.Handle("POST /graphql", &relay.Handler{Schema: schema})
	mux.HandleFunc("GET /graphiql", handler.ServeGraphiQL("/graphql"))
	mux.HandleFunc("GET /api/v1/accounts", accountHandler.List)
	mux.HandleFunc("GET /api/v1/accounts/{id}", accountHandler.GetByID)
	mux.HandleFunc("GET /api/v1/customers", accountHandler.ListCustomers)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           middleware.Chain(mux, middleware.RequestID, middleware.Logging, middleware.Recovery),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func redisPing(client *goredis.Client) handler.PingFunc {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
