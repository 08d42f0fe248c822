package llm

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for upstream model failures. Each maps to a distinct
// user-facing message at the HTTP boundary.
var (
	// ErrAPIKey indicates the provider rejected the configured API key.
	ErrAPIKey = errors.New("model API key is invalid or missing")

	// ErrQuota indicates the provider reported an exhausted quota or
	// rate limit.
	ErrQuota = errors.New("model API quota exceeded")

	// ErrContentPolicy indicates the provider refused the input. Unlike
	// the other failures this one is the caller's doing and surfaces as
	// a 400.
	ErrContentPolicy = errors.New("message violates content policy")

	// ErrUnavailable covers everything else.
	ErrUnavailable = errors.New("AI service is temporarily unavailable")
)

// ClassifyError inspects an upstream error's text and wraps it with the
// matching sentinel. Providers report these conditions as opaque message
// strings, so substring matching is the only handle available.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"):
		return fmt.Errorf("%w: %s", ErrAPIKey, err)
	case strings.Contains(msg, "quota"):
		return fmt.Errorf("%w: %s", ErrQuota, err)
	case strings.Contains(msg, "content policy"):
		return fmt.Errorf("%w: %s", ErrContentPolicy, err)
	default:
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
}
