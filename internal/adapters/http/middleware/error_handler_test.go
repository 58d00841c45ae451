package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"user-service/internal/config"
	"user-service/internal/core/domain"
	"user-service/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		httpStatus int
		status     domain.Status
		classified bool
	}{
		{"invalid request", domain.InvalidRequest(domain.StatusAgeIsInvalid), 400, domain.StatusAgeIsInvalid, true},
		{"not found", domain.NotFound(domain.StatusUserNotFound), 404, domain.StatusUserNotFound, true},
		{"service", domain.Service(domain.StatusInternalServerError), 500, domain.StatusInternalServerError, true},
		{
			"first validation failure wins",
			&domain.ValidationError{Failures: []*domain.Failure{
				domain.InvalidRequest(domain.StatusCardIDIsRequired),
				domain.InvalidRequest(domain.StatusAgeIsInvalid),
			}},
			400, domain.StatusCardIDIsRequired, true,
		},
		{
			"conversion",
			&domain.ConversionError{From: "string", To: "UserType", Err: domain.Service(domain.StatusFailedToConvertValueToEnum)},
			500, domain.StatusFailedToConvertValueToEnum, true,
		},
		{"wrapped failure", fmt.Errorf("lookup: %w", domain.NotFound(domain.StatusUserNotFound)), 404, domain.StatusUserNotFound, true},
		{"decode", &domain.DecodeError{Err: errors.New("unexpected EOF")}, 500, domain.StatusJSONDecodingError, true},
		{"method not allowed", fiber.ErrMethodNotAllowed, 405, domain.StatusMethodNotAllowed, true},
		{"no route", fiber.ErrNotFound, 500, domain.StatusNoMatchingHandler, true},
		{"rate limited", fiber.ErrTooManyRequests, 429, domain.StatusTooManyRequests, true},
		{"other fiber error", fiber.ErrRequestEntityTooLarge, 500, domain.StatusInternalServerError, false},
		{"unclassified", errors.New("boom"), 500, domain.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpStatus, status, classified := Classify(tt.err)
			assert.Equal(t, tt.httpStatus, httpStatus)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.classified, classified)
		})
	}
}

func TestErrorHandlerWritesEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(metrics.New())})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return errors.New("secret internal detail")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return domain.NotFound(domain.StatusUserNotFound)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":{"code":"9999","message":"Internal server error"},"data":null}`, string(body))
	assert.NotContains(t, string(body), "secret")

	resp, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("PUT", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 405, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"9001"`)

	resp, err = app.Test(httptest.NewRequest("GET", "/nowhere", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"9002"`)
}

func TestRateLimiter(t *testing.T) {
	m := metrics.New()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(m)})
	app.Use(RateLimiter(1, time.Minute))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":{"code":"9005","message":"Too many requests"},"data":null}`, string(body))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `user_service_failures_total{code="9005",http_status="429"} 1`)
}

func TestSetupAddsRequestID(t *testing.T) {
	app := fiber.New()
	Setup(app, &config.Config{AppMode: "dev", RateLimit: 0})
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 36)
	assert.Equal(t, "nosniff", resp.Header.Get(fiber.HeaderXContentTypeOptions))
}

func TestCacheHeaders(t *testing.T) {
	app := fiber.New()
	app.Get("/docs", CacheControl(time.Hour), func(c *fiber.Ctx) error { return c.SendString("docs") })
	app.Get("/users", NoStore(), func(c *fiber.Ctx) error { return c.SendString("users") })

	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, "public, max-age=3600", resp.Header.Get(fiber.HeaderCacheControl))

	resp, err = app.Test(httptest.NewRequest("GET", "/users", nil))
	require.NoError(t, err)
	assert.Equal(t, "no-store", resp.Header.Get(fiber.HeaderCacheControl))
}
