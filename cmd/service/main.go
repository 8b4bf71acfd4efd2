package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/segmentio/kafka-go"

	"demo/kitchenpos/internal/api"
	"demo/kitchenpos/internal/cache"
	"demo/kitchenpos/internal/config"
	"demo/kitchenpos/internal/intake"
	"demo/kitchenpos/internal/logging"
	"demo/kitchenpos/internal/service"
	"demo/kitchenpos/internal/store"
)

func main() {
	cfgPath := flag.String("config", env("KITCHENPOS_CONFIG", "kitchenpos.yaml"), "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logging.New("kitchenpos", cfg.Log.Level)

	if err := run(cfg, log); err != nil {
		log.Error("service stopped", slog.String("action", "shutdown"), slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info("shutdown signal", slog.String("action", "shutdown"))
		cancel()
	}()

	pool, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer pool.Close()
	if err := store.Migrate(cfg.DB.DSN); err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	repo := store.New(pool)
	orders := service.NewOrderService(repo, repo, repo, log)
	orderCache := cache.NewOrders(cfg.Cache.TTL)

	if cfg.Cache.Warm {
		if list, err := orders.List(ctx); err == nil {
			for _, o := range list {
				orderCache.Set(o)
			}
			log.Info("cache warm", slog.String("action", "cache_warm"), slog.Int("orders", len(list)))
		} else {
			log.Error("cache warm", slog.String("action", "cache_warm"), slog.Any("err", err))
		}
	}

	if cfg.Intake.Enabled {
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers:     cfg.Kafka.Brokers,
			Topic:       cfg.Kafka.Topic,
			GroupID:     cfg.Kafka.Group,
			MinBytes:    1e3,
			MaxBytes:    10e6,
			StartOffset: kafka.FirstOffset,
		})
		defer reader.Close()
		log.Info("kafka intake", slog.String("action", "intake_start"),
			slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.Topic))
		go func() {
			_ = intake.NewConsumer(reader, orders, orderCache, log).Run(ctx)
		}()
	}

	handler := api.NewHandler(api.Deps{
		MenuGroups: service.NewMenuGroupService(repo),
		Products:   service.NewProductService(repo),
		Menus:      service.NewMenuService(repo, repo, repo, log),
		Tables:     service.NewTableService(repo, repo),
		Orders:     orders,
		Cache:      orderCache,
		Log:        log,
	})
	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() {
		log.Info("http listening", slog.String("action", "http_start"), slog.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	}
	shCtx, cancel2 := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel2()
	_ = srv.Shutdown(shCtx)
	log.Info("bye", slog.String("action", "shutdown"))
	return nil
}

// connect retries with a growing pause until the database answers a ping.
func connect(ctx context.Context, cfg config.DBConfig, log *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConns = cfg.MaxConns

	for i := 1; ; i++ {
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = pool.Ping(pingCtx)
			cancel()
			if err == nil {
				return pool, nil
			}
			pool.Close()
		}
		if i >= cfg.ConnAttempts {
			return nil, fmt.Errorf("after %d attempts: %w", i, err)
		}
		wait := time.Duration(i) * 2 * time.Second
		log.Warn("db not ready", slog.String("action", "db_connect"), slog.Int("attempt", i), slog.Duration("retry_in", wait), slog.Any("err", err))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
