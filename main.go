package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/goblog/internal/app"
)

const shutdownTimeout = 10 * time.Second

func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start every enabled service
	<-wait                      // Wait for the application to receive a termination signal

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	application.Stop(ctx) // Stop the application gracefully
}
