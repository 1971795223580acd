package ports

import (
	"context"

	"release-notify/internal/domain/model"
)

// PayloadWriter delivers a finished payload downstream (e.g. a CI step output).
type PayloadWriter interface {
	Write(ctx context.Context, payload model.Payload) error
}
