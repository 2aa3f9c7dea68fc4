package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderTimeout indicates a provider request timed out.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates the local call budget was exhausted.
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrMalformedResponse indicates the provider returned an unusable body.
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrUnknownProvider indicates an unrecognized provider name in config.
	ErrUnknownProvider = errors.New("unknown provider")
)

// ProviderError wraps provider-specific errors.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
