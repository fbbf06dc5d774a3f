package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "mysched/docs/swagger"
	"mysched/internal/app"
)

// @title MySched API
// @version 1.0
// @description Duty-roster and promotions backend: loads spreadsheet tabs, reconciles them into week schedules, and serves the front end.
// @BasePath /
// @schemes http https
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}
