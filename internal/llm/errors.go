package llm

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ErrorKind classifies a failed generation.
type ErrorKind string

const (
	KindNetwork   ErrorKind = "network"
	KindService   ErrorKind = "service"
	KindMalformed ErrorKind = "malformed"
)

// GenerationError is returned for every failed generation call.
type GenerationError struct {
	Kind ErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("generation failed (%s)", e.Kind)
	}
	return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a generation error, or "" for any other error.
func KindOf(err error) ErrorKind {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

func classify(err error) *GenerationError {
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return &GenerationError{Kind: KindNetwork, Err: err}
	}
	return &GenerationError{Kind: KindService, Err: err}
}
