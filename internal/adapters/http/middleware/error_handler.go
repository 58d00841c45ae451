package middleware

import (
	"errors"
	"log"

	"user-service/internal/core/domain"
	"user-service/internal/pkg/metrics"
	"user-service/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Classify maps an error raised during request handling to the HTTP status
// and catalog entry sent back to the client.
func Classify(err error) (int, domain.Status, bool) {
	if f, ok := domain.AsFailure(err); ok {
		switch f.Kind {
		case domain.KindInvalidRequest:
			return fiber.StatusBadRequest, f.Status, true
		case domain.KindNotFound:
			return fiber.StatusNotFound, f.Status, true
		default:
			return fiber.StatusInternalServerError, f.Status, true
		}
	}

	var decodeErr *domain.DecodeError
	if errors.As(err, &decodeErr) {
		return fiber.StatusInternalServerError, domain.StatusJSONDecodingError, true
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusMethodNotAllowed:
			return fiber.StatusMethodNotAllowed, domain.StatusMethodNotAllowed, true
		case fiber.StatusNotFound:
			return fiber.StatusInternalServerError, domain.StatusNoMatchingHandler, true
		case fiber.StatusTooManyRequests:
			return fiber.StatusTooManyRequests, domain.StatusTooManyRequests, true
		}
	}

	return fiber.StatusInternalServerError, domain.StatusInternalServerError, false
}

// ErrorHandler writes exactly one envelope per failed request and logs it
func ErrorHandler(m *metrics.Metrics) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		httpStatus, status, classified := Classify(err)

		if classified {
			log.Printf("Failed %s %s: %s, %s", c.Method(), c.Path(), status.Code, status.Description)
		} else {
			log.Printf("Failed %s %s: %v", c.Method(), c.Path(), err)
		}

		if m != nil {
			m.RecordFailure(status.Code, httpStatus)
		}

		return response.Error(c, httpStatus, status)
	}
}
