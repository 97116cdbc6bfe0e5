package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error reports a non-2xx backend response. The message always carries the
// numeric status code so error panels can surface it directly.
type Error struct {
	StatusCode int
	Status     string
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend error %d %s: %s", e.StatusCode, e.Status, e.Detail)
	}
	return fmt.Sprintf("backend error %d %s", e.StatusCode, e.Status)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
	}

	// FastAPI-style error payloads carry a "detail" field.
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil {
			if payload.Detail != "" {
				apiErr.Detail = payload.Detail
			} else if payload.Message != "" {
				apiErr.Detail = payload.Message
			}
		}
		if apiErr.Detail == "" {
			apiErr.Detail = strings.TrimSpace(string(body))
		}
	}
	return apiErr
}
