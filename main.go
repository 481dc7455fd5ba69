package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"menucart/catalog"
	"menucart/config"
	"menucart/httpapi"
	"menucart/kv"
	"menucart/store"
)

const Service = "menucart"

var logger *zap.Logger

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger, err = newLogger(cfg)
	if err != nil {
		panic(err)
	}
	os.Exit(exitCode(logger, run(cfg)))
}

// exitCode logs the outcome of run and flushes log before the process exits.
func exitCode(log *zap.Logger, err error) int {
	code := 0
	if err != nil {
		log.Error("server stopped", zap.Error(err))
		code = 1
	} else {
		log.Info("bye")
	}
	_ = log.Sync()
	return code
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	zc := zap.NewProductionConfig()
	if cfg.AppEnv == "dev" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	log, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return log.With(zap.String("service", Service), zap.String("env", cfg.AppEnv)), nil
}

func run(cfg config.Config) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	menu, err := loadMenu(cfg.CatalogPath)
	if err != nil {
		return err
	}
	logger.Info("menu loaded", zap.Int("items", menu.Len()), zap.Strings("categories", menu.Categories()))

	backend, closeKV, err := openKV(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeKV()) }()

	cart := store.New(ctx, backend,
		store.WithTaxRate(cfg.TaxRate),
		store.WithKey(cfg.CartKey),
		store.WithLogger(logger.Named("store")))
	unsubscribe := cart.Subscribe(func(snap store.Snapshot) {
		logger.Debug("cart changed",
			zap.Int("line_items", len(snap.Items)),
			zap.Int("item_count", snap.ItemCount),
			zap.String("total", snap.Totals.Total.StringFixed(2)))
	})
	defer unsubscribe()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := httpapi.NewHandler(menu, cart, logger.Named("http"))
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           httpapi.NewRouter(handler, logger.Named("http"), httpapi.RouterOptions{}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("listen grpc :%d: %w", cfg.GRPCPort, err)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server starting", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("grpc health server starting", zap.Int("port", cfg.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown requested")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		return err
	})

	return g.Wait()
}

func loadMenu(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

// openKV returns the configured cart backend and its release func.
func openKV(ctx context.Context, cfg config.Config) (store.KV, func() error, error) {
	noop := func() error { return nil }

	switch cfg.KVDriver {
	case config.DriverMemory:
		m, err := kv.NewMemory()
		if err != nil {
			return nil, nil, err
		}
		logger.Info("cart storage", zap.String("driver", cfg.KVDriver))
		return m, noop, nil

	case config.DriverFile:
		f := kv.NewFile(cfg.KVPath)
		logger.Info("cart storage", zap.String("driver", cfg.KVDriver), zap.String("path", f.Path()))
		return f, noop, nil

	case config.DriverPostgres:
		p, err := kv.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("cart storage", zap.String("driver", cfg.KVDriver))
		return p, func() error { p.Close(); return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown KV driver %q", cfg.KVDriver)
	}
}
