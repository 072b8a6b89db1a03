package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// GenericMessage is shown when a failure carries no usable detail.
const GenericMessage = "Error inesperado."

// Error wraps a non-2xx response from the backend. Body holds the raw
// response bytes so the normalizer can inspect whatever the server sent.
type Error struct {
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("request failed for %s: %s", e.URL, e.Status)
}

// Message normalizes any failure into a single display string. Server-supplied
// detail wins over the transport error: a JSON body with a non-blank "message"
// field, then a non-blank plain-text body, then the wrapper's own message.
// Anything that is not an *Error gets the generic fallback.
func Message(err error) string {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return GenericMessage
	}

	if strings.TrimSpace(string(apiErr.Body)) != "" {
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(apiErr.Body, &payload) == nil && strings.TrimSpace(payload.Message) != "" {
			return payload.Message
		}

		var text string
		if json.Unmarshal(apiErr.Body, &text) == nil {
			if strings.TrimSpace(text) != "" {
				return text
			}
		} else if !json.Valid(apiErr.Body) {
			// Plain text body, e.g. from a proxy in front of the API.
			return string(apiErr.Body)
		}
	}

	if msg := apiErr.Error(); strings.TrimSpace(msg) != "" {
		return msg
	}

	return GenericMessage
}
