package validator

import (
	"strings"
	"time"

	"user-service/internal/core/domain"
)

// DateLayout is the accepted date format (DD-MM-YYYY)
const DateLayout = "02-01-2006"

// Integer is the set of numeric field types Min and Max accept
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Required fails when value is absent or a blank string
func Required[T any](value *T, status domain.Status) *domain.Failure {
	if value == nil {
		return domain.InvalidRequest(status)
	}
	if s, ok := any(*value).(string); ok && strings.TrimSpace(s) == "" {
		return domain.InvalidRequest(status)
	}
	return nil
}

// Min fails when a present value is below bound
func Min[T Integer](value *T, bound int64, status domain.Status) *domain.Failure {
	if value != nil && int64(*value) < bound {
		return domain.InvalidRequest(status)
	}
	return nil
}

// Max fails when a present value is above bound
func Max[T Integer](value *T, bound int64, status domain.Status) *domain.Failure {
	if value != nil && int64(*value) > bound {
		return domain.InvalidRequest(status)
	}
	return nil
}

// IsEnum fails when a present value is not one of allowed
func IsEnum[T comparable](value *T, allowed []T, status domain.Status) *domain.Failure {
	if value == nil {
		return nil
	}
	for _, a := range allowed {
		if *value == a {
			return nil
		}
	}
	return domain.InvalidRequest(status)
}

// IsDate fails when a present value does not parse under layout
func IsDate(value *string, layout string, status domain.Status) *domain.Failure {
	if value == nil {
		return nil
	}
	if _, ok := ParseDate(*value, layout); !ok {
		return domain.InvalidRequest(status)
	}
	return nil
}

// ParseDate parses value strictly: the re-formatted date must match the input,
// which rejects out-of-range days and loosely padded fields.
func ParseDate(value, layout string) (time.Time, bool) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, false
	}
	if t.Format(layout) != value {
		return time.Time{}, false
	}
	return t, true
}

// Builder collects failures from a sequence of checks without short-circuiting
type Builder struct {
	failures []*domain.Failure
}

// New creates an empty Builder
func New() *Builder {
	return &Builder{}
}

// Check records f when it is non-nil
func (b *Builder) Check(f *domain.Failure) *Builder {
	if f != nil {
		b.failures = append(b.failures, f)
	}
	return b
}

// Err returns a ValidationError holding every recorded failure, or nil
func (b *Builder) Err() error {
	if len(b.failures) == 0 {
		return nil
	}
	return &domain.ValidationError{Failures: b.failures}
}
