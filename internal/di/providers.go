package di

import (
	"os"

	"release-notify/internal/adapter/githuboutput"
	"release-notify/internal/adapter/logging"
	"release-notify/internal/config"
	"release-notify/internal/domain/ports"
	"release-notify/internal/usecase"
)

func provideLogger(cfg *config.Config) *logging.ZeroLogger {
	return logging.New(os.Stderr, cfg.LogLevel)
}

func providePayloadWriter(cfg *config.Config, logger ports.Logger) ports.PayloadWriter {
	return githuboutput.NewWriter(cfg.OutputPath, logger)
}

func provideNotificationConfig(cfg *config.Config) usecase.ReleaseNotificationConfig {
	return usecase.ReleaseNotificationConfig{
		Release:  cfg.Release(),
		Validate: cfg.Validate,
	}
}
