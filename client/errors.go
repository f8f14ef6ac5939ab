package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	box "github.com/ionutliviu/box-go-sdk"
)

// Error codes the remote uses for name collisions.
const (
	codeNameInUse     = "item_name_in_use"
	codeNameReserved  = "name_temporarily_reserved"
	maxErrorBodyBytes = 1 << 20
)

// APIError is a classified remote failure. Unwrap exposes the box sentinel
// matching the status and error code, so errors.Is works on values wrapped
// any number of times above this layer.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

// Error returns a string representation of the error.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("box api: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("box api: %d: %s", e.Status, e.Message)
}

// Unwrap returns the box sentinel for the failure class, or nil when the
// failure has no classification.
func (e *APIError) Unwrap() error {
	switch {
	case e.Code == codeNameInUse || e.Code == codeNameReserved:
		return box.ErrNameTaken
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return box.ErrNotAuthorized
	case e.Status == http.StatusNotFound:
		return box.ErrNotFound
	case e.Status == http.StatusConflict:
		return box.ErrNameTaken
	case e.Status == http.StatusBadRequest:
		return box.ErrInvalidInput
	}
	return nil
}

// apiError drains the response body and builds the classified error. Bodies
// that are not the remote's JSON error shape are kept verbatim as the
// message.
func (c *Client) apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	apiErr := &APIError{Status: resp.StatusCode}
	var decoded struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil {
		apiErr.Code = decoded.Code
		apiErr.Message = decoded.Message
		apiErr.RequestID = decoded.RequestID
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
