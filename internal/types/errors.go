//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// NotFoundError indicates a referenced entity does not exist. It is always
// surfaced to the orchestration caller as a hard failure.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// InvalidInputError indicates bad input from the immediate caller
// (empty text to embed, missing required identifiers). Hard failure.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// UpstreamError indicates a failed call to an external service (embedding,
// vector index, requirement extraction). Clients surface it honestly;
// orchestration boundaries catch it, log, and degrade to an empty result.
type UpstreamError struct {
	Service string
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Service, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
