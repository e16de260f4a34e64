package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/dmitrijs2005/jobtrackr/internal/common"
)

// APIError is a non-2xx response translated into an error. Message carries
// the most specific text the server provided.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap maps authorization failures onto the shared sentinel so callers can
// match with errors.Is(err, common.ErrUnauthorized).
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return common.ErrUnauthorized
	}
	return nil
}

// parseAPIError extracts the best available message from an error body.
//
// Lookup order mirrors what the backend actually emits: a top-level "error",
// "detail" or "message" string; otherwise the first field-validation message
// (422-style {"field": ["msg", ...]}); otherwise a generic status line.
func parseAPIError(statusCode int, body []byte) error {
	return &APIError{StatusCode: statusCode, Message: extractMessage(statusCode, body)}
}

func extractMessage(statusCode int, body []byte) string {
	fallback := fmt.Sprintf("HTTP %d %s", statusCode, http.StatusText(statusCode))
	if len(body) == 0 {
		return fallback
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}

	for _, key := range []string{"error", "detail", "message"} {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}

	// Field errors: pick the first field alphabetically for determinism.
	fields := make([]string, 0, len(payload))
	for k := range payload {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	for _, field := range fields {
		switch v := payload[field].(type) {
		case []any:
			if len(v) > 0 {
				if s, ok := v[0].(string); ok && s != "" {
					return fmt.Sprintf("%s: %s", field, s)
				}
			}
		case string:
			if v != "" {
				return fmt.Sprintf("%s: %s", field, v)
			}
		}
	}

	return fallback
}
