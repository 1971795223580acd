package usecase

import (
	"context"
	"fmt"

	"release-notify/internal/domain/model"
	"release-notify/internal/domain/ports"
)

// ReleaseNotification formats the release notification and hands it to the writer,
// degrading to a fallback payload when the detailed one cannot be built.
type ReleaseNotification struct {
	release   model.Release
	validate  func() error
	extractor ports.ChangeExtractor
	builder   ports.PayloadBuilder
	writer    ports.PayloadWriter
	logger    ports.Logger
}

// ReleaseNotificationConfig carries the release event and its input check.
// Validate may be nil when the release is known to be complete.
type ReleaseNotificationConfig struct {
	Release  model.Release
	Validate func() error
}

// NewReleaseNotification constructs a ReleaseNotification use case.
func NewReleaseNotification(
	extractor ports.ChangeExtractor,
	builder ports.PayloadBuilder,
	writer ports.PayloadWriter,
	logger ports.Logger,
	cfg ReleaseNotificationConfig,
) *ReleaseNotification {
	return &ReleaseNotification{
		release:   cfg.Release,
		validate:  cfg.Validate,
		extractor: extractor,
		builder:   builder,
		writer:    writer,
		logger:    logger,
	}
}

// Run builds the payload and writes it. Only a failed write, or a fallback
// with no channel to go to, is returned as an error.
func (r *ReleaseNotification) Run(ctx context.Context) error {
	payload, err := r.buildDetailed(ctx)
	if err != nil {
		r.logger.Warn(ctx, "error generating detailed payload, using fallback", "error", err)

		payload, err = r.builder.Fallback(r.release, err)
		if err != nil {
			r.logger.Error(ctx, "cannot build fallback payload", "error", err)
			return fmt.Errorf("fallback payload: %w", err)
		}
	}

	if err := r.writer.Write(ctx, payload); err != nil {
		r.logger.Error(ctx, "failed to write step output", "error", err)
		return err
	}

	r.logger.Info(ctx, "release notification prepared", "channel", payload.Channel, "blocks", len(payload.Blocks))
	return nil
}

func (r *ReleaseNotification) buildDetailed(ctx context.Context) (model.Payload, error) {
	if r.validate != nil {
		if err := r.validate(); err != nil {
			return model.Payload{}, err
		}
	}

	changes, err := r.extractor.Extract(ctx, r.release.ReleaseBody, r.release.GitHubRepo)
	if err != nil {
		return model.Payload{}, err
	}
	r.logger.Info(ctx, "changelog parsed", "changes", len(changes))

	return r.builder.Build(r.release, changes)
}
