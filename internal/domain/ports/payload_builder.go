package ports

import "release-notify/internal/domain/model"

// PayloadBuilder renders release notifications for a chat service.
type PayloadBuilder interface {
	Build(release model.Release, changes []model.Change) (model.Payload, error)
	Fallback(release model.Release, cause error) (model.Payload, error)
}
