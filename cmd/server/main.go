// Command server starts the shopping-list HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables;
// a .env file in the working directory is loaded first if present.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/shoplist-backend/internal/app"
)

func main() {
	_ = godotenv.Load() // optional, for local development

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
