package services

import (
	"context"
	"fmt"

	"user-service/internal/core/converters"
	"user-service/internal/core/domain"
	"user-service/internal/core/dto"
	"user-service/internal/pkg/keys"
	"user-service/internal/pkg/pagination"
)

// UserService handles user management business logic
type UserService struct {
	persistence UserPersistence
	activities  ActivityProvider
	keySize     int
}

// NewUserService creates a new user service
func NewUserService(persistence UserPersistence, activities ActivityProvider) *UserService {
	return &UserService{
		persistence: persistence,
		activities:  activities,
		keySize:     keys.DefaultKeySize,
	}
}

// CreateUser stores a new user at the initial level.
// req must already have passed Validate.
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	cmd, err := converters.CreateUserRequestToCommand(req)
	if err != nil {
		return nil, err
	}
	cmd.Level = domain.InitialUserLevel

	saved, err := s.persistence.Save(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return converters.CommandToResponse(saved), nil
}

// UpdateUser applies the non-blank fields of req to an existing user.
// Type and status values outside their enums fail with a Service failure.
// An empty request returns the stored user without writing it.
func (s *UserService) UpdateUser(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	cmd, err := s.persistence.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return converters.CommandToResponse(cmd), nil
	}

	if err := converters.ApplyUpdate(cmd, req); err != nil {
		return nil, err
	}

	saved, err := s.persistence.Save(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return converters.CommandToResponse(saved), nil
}

// GetUser returns a user enriched with an activity from the activity API
func (s *UserService) GetUser(ctx context.Context, id uint) (*dto.UserResponse, error) {
	cmd, err := s.persistence.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	activity, err := s.activities.GetActivity()
	if err != nil {
		return nil, fmt.Errorf("fetch activity for user %d: %w", id, err)
	}

	resp := converters.CommandToResponse(cmd)
	resp.Activity = converters.ActivityCommandToResponse(converters.ActivityExternalToCommand(activity))
	return resp, nil
}

// ListUsers returns one page of users in short form
func (s *UserService) ListUsers(ctx context.Context, params *pagination.Params) (*pagination.Page[*dto.UserShortResponse], error) {
	page, err := s.persistence.FindAll(ctx, params)
	if err != nil {
		return nil, err
	}

	return converters.CommandPageToShortResponsePage(page), nil
}

// DeleteUser removes a user; absent ids succeed
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.persistence.Delete(ctx, id)
}

// GenerateKeyPair issues a fresh RSA key pair for an existing user
func (s *UserService) GenerateKeyPair(ctx context.Context, id uint) (*dto.KeyPairResponse, error) {
	if _, err := s.persistence.FindByID(ctx, id); err != nil {
		return nil, err
	}

	priv, pub, err := keys.Generate(s.keySize)
	if err != nil {
		return nil, fmt.Errorf("generate key pair for user %d: %w", id, err)
	}

	return converters.KeyPairToResponse(&domain.KeyPair{PrivateKey: priv, PublicKey: pub}), nil
}
