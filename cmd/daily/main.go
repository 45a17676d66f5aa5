package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kettleTeacues/yfinance/internal/app/runner"
	"github.com/kettleTeacues/yfinance/internal/feature/marketdata/domain/entity"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx, entity.TierDaily); err != nil {
		log.Fatal(err)
	}
	log.Println("daily ingest finished")
}
