package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kettleTeacues/yfinance/internal/app/di"
	"github.com/kettleTeacues/yfinance/internal/app/router"
	runadapters "github.com/kettleTeacues/yfinance/internal/feature/ingestrun/adapters"
	runhandler "github.com/kettleTeacues/yfinance/internal/feature/ingestrun/transport/handler"
	runusecase "github.com/kettleTeacues/yfinance/internal/feature/ingestrun/usecase"
	symbollistadapters "github.com/kettleTeacues/yfinance/internal/feature/symbollist/adapters"
	symbollisthandler "github.com/kettleTeacues/yfinance/internal/feature/symbollist/transport/handler"
	symbollistusecase "github.com/kettleTeacues/yfinance/internal/feature/symbollist/usecase"
	"github.com/kettleTeacues/yfinance/internal/platform/db"
	"github.com/kettleTeacues/yfinance/internal/shared/envconfig"
)

type serverConfig struct {
	Addr string `env:"SERVER_ADDR" envDefault:":8080" validate:"required"`
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	envconfig.LoadDotEnv()

	var cfg serverConfig
	if err := envconfig.Parse(&cfg); err != nil {
		log.Fatal(err)
	}

	// db
	store, err := di.OpenStore()
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := db.Close(store); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Repository
	runRepo := runadapters.NewRunRepository(store)
	stockRepo := symbollistadapters.NewStockRepository(store)

	// Usecase（/symbols は保存済みの銘柄マスタのみを参照する）
	runUC := runusecase.NewRunUsecase(runRepo)
	symbolUC := symbollistusecase.NewSymbolUsecase(nil, stockRepo)

	// Handler
	runH := runhandler.NewRunHandler(runUC)
	symbolH := symbollisthandler.NewSymbolHandler(symbolUC)

	// ルータ生成
	r := router.NewRouter(func(ctx context.Context) error { return db.Ping(ctx, store) }, runH, symbolH)

	srv := &http.Server{Addr: cfg.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("status API listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
