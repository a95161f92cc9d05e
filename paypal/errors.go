package paypal

import (
	"errors"
	"fmt"
	"strings"
)

// NoInfoMessage is the APIError message used when a failed response carries no
// error descriptor.
const NoInfoMessage = "An error occurred but no information was provided in the response."

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("paypal: validation failed")

	// ErrMissingToken is returned when SetExpressCheckout answers without a TOKEN.
	ErrMissingToken = errors.New("paypal: missing token")

	// ErrInvalidDate is returned when PROFILESTARTDATE is not a usable date.
	ErrInvalidDate = errors.New("paypal: date isn't a valid date")
)

// ValidationError reports a required constructor or request field that is missing.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "paypal: missing required field " + e.Field
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// APIError is a response whose ACK is not Success.
type APIError struct {
	Ack      string
	Details  []ErrorDetail
	Response Response
}

// Error is built from the first error descriptor only.
func (e *APIError) Error() string {
	return failureMessage(e.Response)
}

func newAPIError(r Response) *APIError {
	return &APIError{Ack: r.Ack(), Details: r.Errors(), Response: r}
}

func failureMessage(r Response) string {
	var parts []string
	for _, k := range []string{"L_ERRORCODE0", "L_SHORTMESSAGE0", "L_LONGMESSAGE0"} {
		if v := r[k]; v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return NoInfoMessage
	}
	return strings.Join(parts, " - ")
}

// HTTPError is a non-200 answer from the NVP endpoint. Response is nil when
// the body could not be parsed into any field.
type HTTPError struct {
	StatusCode int
	Response   Response
}

func (e *HTTPError) Error() string {
	if len(e.Response) == 0 {
		return fmt.Sprintf("paypal: unexpected http status %d", e.StatusCode)
	}
	return fmt.Sprintf("paypal: http status %d: %s", e.StatusCode, failureMessage(e.Response))
}
