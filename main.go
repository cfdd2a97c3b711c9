package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"indi-cards/internal/app/cli"

	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("❌ indi failed")
		stop()
		os.Exit(1)
	}
}
