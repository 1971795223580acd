package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"release-notify/internal/di"
)

func main() {
	application, err := di.InitializeApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = application.Run(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "release notification failed: %v\n", err)
		os.Exit(1)
	}
}
