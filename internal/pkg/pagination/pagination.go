package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Params represents pagination parameters
type Params struct {
	Page   int `json:"page"`
	Size   int `json:"size"`
	Offset int `json:"-"`
}

// DefaultPage is the page returned when none is requested
const DefaultPage = 1

// DefaultSize is the default number of items per page
const DefaultSize = 10

// MaxSize is the maximum number of items per page
const MaxSize = 100

// GetParams extracts pagination parameters from request
func GetParams(c *fiber.Ctx) *Params {
	page, err := strconv.Atoi(c.Query("page", strconv.Itoa(DefaultPage)))
	if err != nil {
		page = DefaultPage
	}
	size, err := strconv.Atoi(c.Query("size", strconv.Itoa(DefaultSize)))
	if err != nil {
		size = DefaultSize
	}

	return NewParams(page, size)
}

// NewParams normalizes page and size and computes the offset
func NewParams(page, size int) *Params {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	return &Params{
		Page:   page,
		Size:   size,
		Offset: (page - 1) * size,
	}
}

// Page is one page of results
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPage creates a page; Size is the number of items actually returned
func NewPage[T any](content []T, params *Params, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := int(total) / params.Size
	if int(total)%params.Size > 0 {
		totalPages++
	}

	return &Page[T]{
		Content:       content,
		Number:        params.Page,
		Size:          len(content),
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// Map converts every item of p with fn
func Map[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	content := make([]U, len(p.Content))
	for i, item := range p.Content {
		content[i] = fn(item)
	}

	return &Page[U]{
		Content:       content,
		Number:        p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
