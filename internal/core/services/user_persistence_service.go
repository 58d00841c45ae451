package services

import (
	"context"
	"errors"
	"fmt"

	"user-service/internal/adapters/persistence/repositories"
	"user-service/internal/core/converters"
	"user-service/internal/core/domain"
	"user-service/internal/pkg/pagination"

	"gorm.io/gorm"
)

// UserPersistenceService maps user commands onto the user repository
type UserPersistenceService struct {
	userRepo repositories.UserRepository
}

// NewUserPersistenceService creates a new persistence service
func NewUserPersistenceService(userRepo repositories.UserRepository) *UserPersistenceService {
	return &UserPersistenceService{userRepo: userRepo}
}

// Save inserts a command without an id and updates one with an id.
// The returned command carries the stored id.
func (s *UserPersistenceService) Save(ctx context.Context, cmd *domain.UserCommand) (*domain.UserCommand, error) {
	entity := converters.CommandToEntity(cmd)

	if entity.ID == 0 {
		if err := s.userRepo.Create(ctx, entity); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
	} else {
		if err := s.userRepo.Update(ctx, entity); err != nil {
			return nil, fmt.Errorf("update user %d: %w", entity.ID, err)
		}
	}

	return converters.EntityToCommand(entity)
}

// FindByID fails with USER_NOT_FOUND when no row has the id
func (s *UserPersistenceService) FindByID(ctx context.Context, id uint) (*domain.UserCommand, error) {
	entity, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound(domain.StatusUserNotFound)
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}

	return converters.EntityToCommand(entity)
}

// FindAll returns one page of users ordered by id
func (s *UserPersistenceService) FindAll(ctx context.Context, params *pagination.Params) (*pagination.Page[*domain.UserCommand], error) {
	entities, total, err := s.userRepo.List(ctx, params.Offset, params.Size)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	content := make([]*domain.UserCommand, 0, len(entities))
	for _, e := range entities {
		cmd, err := converters.EntityToCommand(e)
		if err != nil {
			return nil, err
		}
		content = append(content, cmd)
	}

	return pagination.NewPage(content, params, total), nil
}

// Delete removes the row; absent ids are not an error
func (s *UserPersistenceService) Delete(ctx context.Context, id uint) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

var _ UserPersistence = (*UserPersistenceService)(nil)
