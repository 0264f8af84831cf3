package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// APIError is the single error kind the gateway returns. It covers both
// requests that never completed (StatusCode 0) and non-2xx responses.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the transport error, if any
func (e *APIError) Unwrap() error {
	return e.Err
}

// Unauthorized reports whether the API rejected the held token
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// AsAPIError extracts an *APIError from err
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Message returns the text a form should show for err
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

const nonFieldErrors = "non_field_errors"

// errorMessage picks the human readable part of an error body: message,
// then detail, then error, then the first field validation error.
func errorMessage(status int, data []byte) string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err == nil {
		for _, key := range []string{"message", "detail", "error"} {
			if msg := firstString(body[key]); msg != "" {
				return msg
			}
		}
		if msg := fieldError(body); msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}

func fieldError(body map[string]json.RawMessage) string {
	if msg := firstString(body[nonFieldErrors]); msg != "" {
		return msg
	}
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if msg := firstString(body[k]); msg != "" {
			return k + ": " + msg
		}
	}
	return ""
}

// firstString accepts "msg" or ["msg", ...]
func firstString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	return ""
}
