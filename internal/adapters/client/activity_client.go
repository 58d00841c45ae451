// Package client holds outbound HTTP adapters.
package client

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ActivityExternal is the payload returned by the activity API
type ActivityExternal struct {
	Activity      string  `json:"activity"`
	Type          string  `json:"type"`
	Participants  int     `json:"participants"`
	Price         float64 `json:"price"`
	Link          string  `json:"link"`
	Key           string  `json:"key"`
	Accessibility float64 `json:"accessibility"`
}

// ActivityClient fetches a random activity from a third-party API
type ActivityClient struct {
	url string
}

// NewActivityClient creates a client calling host+path
func NewActivityClient(host, path string) *ActivityClient {
	return &ActivityClient{url: host + path}
}

// GetActivity performs one GET with no retry
func (c *ActivityClient) GetActivity() (*ActivityExternal, error) {
	var activity ActivityExternal

	code, _, errs := fiber.Get(c.url).Struct(&activity)
	if code != 0 && (code < fiber.StatusOK || code >= fiber.StatusMultipleChoices) {
		return nil, fmt.Errorf("activity api %s returned status %d", c.url, code)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("activity api %s: %w", c.url, errors.Join(errs...))
	}

	return &activity, nil
}
