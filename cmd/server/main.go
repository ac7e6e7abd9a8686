// Command server runs the HTTP backend.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) with
// environment variable overrides.
package main

import (
	"context"
	"log"

	"github.com/genialcrm/genial-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
