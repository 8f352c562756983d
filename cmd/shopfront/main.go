package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/hvtran/shopfront/internal/client/cli"
	"github.com/hvtran/shopfront/internal/client/config"
	"github.com/hvtran/shopfront/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	// The terminal belongs to the REPL; diagnostics go to a file next to
	// the local database.
	logFile, err := os.OpenFile("shopfront.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logFile.Close()

	app, err := cli.NewApp(ctx, cfg, logging.NewDefault(logFile, slog.LevelInfo))
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
