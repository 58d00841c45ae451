package services

import (
	"context"

	"user-service/internal/adapters/client"
	"user-service/internal/core/domain"
	"user-service/internal/pkg/pagination"
)

// ActivityProvider fetches the activity attached to a user lookup
type ActivityProvider interface {
	GetActivity() (*client.ActivityExternal, error)
}

// UserPersistence is the command-level storage accessor used by UserService
type UserPersistence interface {
	Save(ctx context.Context, cmd *domain.UserCommand) (*domain.UserCommand, error)
	FindByID(ctx context.Context, id uint) (*domain.UserCommand, error)
	FindAll(ctx context.Context, params *pagination.Params) (*pagination.Page[*domain.UserCommand], error)
	Delete(ctx context.Context, id uint) error
}
