package bringup

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Environment failures.
var (
	ErrNotInitialized = errors.New("cannot initialize the GLFW library")
	ErrLoaderNotFound = errors.New("GLFW failed to find the Vulkan loader")
	ErrNoExtensions   = errors.New("failed to find the required extensions")
)

// ErrLayersUnavailable is returned when a requested validation layer is not
// provided by the host.
var ErrLayersUnavailable = errors.New("validation layers requested but not available")

// Selection failures. They are deliberately distinct.
var (
	ErrNoGPU         = errors.New("failed to find GPUs with Vulkan support")
	ErrNoSuitableGPU = errors.New("failed to find a suitable GPU")
)

// ResultError reports a Vulkan call that did not return Success.
type ResultError struct {
	Op     string // "create", "enumerate"
	Stage  string // "instance", "logical device", ...
	Result Result
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("failed to %s the %s (%d: %s)", e.Op, e.Stage, int32(e.Result), Translate(e.Result))
}

// check turns a non-success result into a *ResultError.
func check(op, stage string, r Result) error {
	if r.IsSuccess() {
		return nil
	}
	return errors.WithStack(&ResultError{Op: op, Stage: stage, Result: r})
}

// Kind is the failure category of a bring-up error.
type Kind int

const (
	KindUnknown Kind = iota
	KindEnvironment
	KindLayer
	KindAPICall
	KindSelection
)

func (k Kind) String() string {
	switch k {
	case KindEnvironment:
		return "environment"
	case KindLayer:
		return "layer"
	case KindAPICall:
		return "api call"
	case KindSelection:
		return "selection"
	default:
		return "unknown"
	}
}

// KindOf classifies err.
func KindOf(err error) Kind {
	var re *ResultError
	switch {
	case err == nil:
		return KindUnknown
	case errors.IsAny(err, ErrNotInitialized, ErrLoaderNotFound, ErrNoExtensions):
		return KindEnvironment
	case errors.Is(err, ErrLayersUnavailable):
		return KindLayer
	case errors.As(err, &re):
		return KindAPICall
	case errors.IsAny(err, ErrNoGPU, ErrNoSuitableGPU):
		return KindSelection
	default:
		return KindUnknown
	}
}
