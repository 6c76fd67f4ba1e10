package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/brief/cli"
	"github.com/ardnew/brief/log"
)

func main() {
	ctx := context.Background()

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)
	if err != nil {
		log.Default().Log(ctx, log.LevelError, "run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
