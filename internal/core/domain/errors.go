package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure for HTTP status selection
type Kind int

const (
	KindInvalidRequest Kind = iota + 1
	KindNotFound
	KindService
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "InvalidRequest"
	case KindNotFound:
		return "NotFound"
	case KindService:
		return "Service"
	default:
		return "Unclassified"
	}
}

// Failure is a classified error carrying one catalog status
type Failure struct {
	Kind   Kind
	Status Status
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s %s", f.Kind, f.Status.Code, f.Status.Description)
}

// InvalidRequest creates a client-caused failure (400)
func InvalidRequest(status Status) *Failure {
	return &Failure{Kind: KindInvalidRequest, Status: status}
}

// NotFound creates an entity lookup failure (404)
func NotFound(status Status) *Failure {
	return &Failure{Kind: KindNotFound, Status: status}
}

// Service creates a server-side failure (500)
func Service(status Status) *Failure {
	return &Failure{Kind: KindService, Status: status}
}

// ValidationError aggregates every failure raised while validating one request.
// The first failure decides the response.
type ValidationError struct {
	Failures []*Failure
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Status.Code
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Unwrap exposes the failures to errors.As in evaluation order
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

// ConversionError wraps a failure raised while mapping between representations
type ConversionError struct {
	From string
	To   string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s to %s: %v", e.From, e.To, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// DecodeError reports a request body that could not be decoded
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode request body: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsFailure returns the first classified failure in err's chain
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
