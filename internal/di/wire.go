//go:build wireinject

package di

import (
	"github.com/google/wire"

	"release-notify/internal/adapter/blockkit"
	"release-notify/internal/adapter/changelog"
	"release-notify/internal/adapter/logging"
	"release-notify/internal/app"
	"release-notify/internal/config"
	"release-notify/internal/domain/ports"
	"release-notify/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideLogger,
		wire.Bind(new(ports.Logger), new(*logging.ZeroLogger)),
		changelog.NewExtractor,
		wire.Bind(new(ports.ChangeExtractor), new(*changelog.Extractor)),
		blockkit.NewBuilder,
		wire.Bind(new(ports.PayloadBuilder), new(*blockkit.Builder)),
		providePayloadWriter,
		provideNotificationConfig,
		usecase.NewReleaseNotification,
		app.New,
	)
	return nil, nil
}
