package response

import (
	"user-service/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// StatusBody is the status half of every envelope
type StatusBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response represents a standard API response
type Response struct {
	Status StatusBody  `json:"status"`
	Data   interface{} `json:"data"`
}

// New builds an envelope for status and data
func New(status domain.Status, data interface{}) Response {
	return Response{
		Status: StatusBody{Code: status.Code, Message: status.Description},
		Data:   data,
	}
}

// Success sends a 200 response with the SUCCESS status
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(New(domain.StatusSuccess, data))
}

// Error sends an error response with null data
func Error(c *fiber.Ctx, httpStatus int, status domain.Status) error {
	return c.Status(httpStatus).JSON(New(status, nil))
}
