package llm

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil error", nil, nil},
		{"api key", errors.New("API key not valid"), ErrAPIKey},
		{"api key lowercase", errors.New("invalid api key supplied"), ErrAPIKey},
		{"quota", errors.New("quota exceeded for model"), ErrQuota},
		{"content policy", errors.New("request blocked by content policy"), ErrContentPolicy},
		{"wrapped quota", fmt.Errorf("generate: %w", errors.New("Quota limit reached")), ErrQuota},
		{"timeout falls through", errors.New("context deadline exceeded"), ErrUnavailable},
		{"connection reset", errors.New("connection reset by peer"), ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err)
			if tt.want == nil {
				if got != nil {
					t.Errorf("ClassifyError(nil) = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("ClassifyError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
