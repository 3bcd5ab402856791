package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

// version / revision are injected at build time
var (
	version  string
	revision string
)

const (
	serverIdentity = "nemcli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(ctx)
	if err := root.Execute(); err != nil {
		stop()
		log.Fatal().Err(err).Msg("command failed")
	}
}
