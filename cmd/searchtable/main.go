package main

import (
	"context"
	"github.com/gostonefire/searchtable/internal/cli"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Run(ctx, os.Args[1:]); err != nil {
		log.Errorf("[CLI] %v", err)
		stop()
		os.Exit(1)
	}
}
