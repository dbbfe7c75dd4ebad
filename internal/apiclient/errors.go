package apiclient

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by Fetch matches exactly one of them
// under errors.Is.
var (
	// ErrNetwork covers unreachable hosts, transport errors, cancellation
	// and non-2xx responses.
	ErrNetwork = errors.New("network failure")
	// ErrDecode covers bodies that are not a JSON array of objects.
	ErrDecode = errors.New("decode failure")
)

// FetchError describes a failed read of one resource.
type FetchError struct {
	Resource string
	URL      string
	Kind     error // ErrNetwork or ErrDecode
	Status   int   // HTTP status when a response was received
	Err      error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: %v: status %d: %v", e.Resource, e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v: %v", e.Resource, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
