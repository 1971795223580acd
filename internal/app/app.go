package app

import (
	"context"
	"time"

	"release-notify/internal/domain/ports"
	"release-notify/internal/usecase"
)

// App runs the release notification step once per CI invocation.
type App struct {
	usecase *usecase.ReleaseNotification
	logger  ports.Logger
}

// New constructs an App instance.
func New(notification *usecase.ReleaseNotification, logger ports.Logger) *App {
	return &App{
		usecase: notification,
		logger:  logger,
	}
}

// Run executes the use case. A returned error means the step must fail.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()
	a.logger.Info(ctx, "formatting release notification")

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.usecase.Run(ctx); err != nil {
		return err
	}

	a.logger.Info(ctx, "release notification done", "duration", time.Since(start))
	return nil
}
