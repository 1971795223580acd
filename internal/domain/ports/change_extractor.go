package ports

import (
	"context"

	"release-notify/internal/domain/model"
)

// ChangeExtractor turns a release changelog into pull-request changes.
type ChangeExtractor interface {
	Extract(ctx context.Context, body, repo string) ([]model.Change, error)
}
