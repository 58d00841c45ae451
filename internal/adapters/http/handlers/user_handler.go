package handlers

import (
	"strconv"

	"user-service/internal/core/domain"
	"user-service/internal/core/dto"
	"user-service/internal/core/services"
	"user-service/internal/pkg/pagination"
	"user-service/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser handles user creation
// @Summary Create user
// @Description Create a user; every field is required
// @Tags Users
// @Accept json
// @Produce json
// @Param body body dto.CreateUserRequest true "User data"
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /v1/users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return &domain.DecodeError{Err: err}
	}
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := h.userService.CreateUser(c.UserContext(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, user)
}

// UpdateUser handles partial user updates
// @Summary Update user
// @Description Overwrite the non-blank fields of a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /v1/users/{id} [patch]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return &domain.DecodeError{Err: err}
	}
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := h.userService.UpdateUser(c.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return response.Success(c, user)
}

// GetUser handles getting a user by ID
// @Summary Get user by ID
// @Description Get a user together with a suggested activity
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /v1/users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return err
	}

	return response.Success(c, user)
}

// ListUsers handles listing users
// @Summary List users
// @Description Get a page of users in short form
// @Tags Users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /v1/users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	page, err := h.userService.ListUsers(c.UserContext(), pagination.GetParams(c))
	if err != nil {
		return err
	}

	return response.Success(c, page)
}

// DeleteUser handles deleting a user
// @Summary Delete user
// @Description Delete a user; unknown ids succeed
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.UserContext(), id); err != nil {
		return err
	}

	return response.Success(c, nil)
}

// GenerateKeyPair handles RSA key pair issuance
// @Summary Generate key pair
// @Description Generate an RSA key pair for an existing user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Response{data=dto.KeyPairResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /v1/users/{id}/keys [post]
func (h *UserHandler) GenerateKeyPair(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	keys, err := h.userService.GenerateKeyPair(c.UserContext(), id)
	if err != nil {
		return err
	}

	return response.Success(c, keys)
}

func parseUserID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, domain.InvalidRequest(domain.StatusUserIDIsInvalid)
	}
	return uint(id), nil
}
