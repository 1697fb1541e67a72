package errors

import "errors"

// DomainError is a relay failure with a stable code clients and logs can match on.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches any DomainError carrying the same code, so wrapped copies
// compare equal to the sentinel values below.
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if !errors.As(target, &de) {
		return false
	}
	return de.Code == e.Code
}

var (
	ErrMissingCharges = &DomainError{
		Code:    "MISSING_CHARGES",
		Message: "notification payload has no charges",
	}
	ErrInvalidPayload = &DomainError{
		Code:    "INVALID_PAYLOAD",
		Message: "notification payload is not valid JSON",
	}
	ErrWebhookRejected = &DomainError{
		Code:    "WEBHOOK_REJECTED",
		Message: "webhook responded with a non-2xx status",
	}
	ErrWebhookUnreachable = &DomainError{
		Code:    "WEBHOOK_UNREACHABLE",
		Message: "webhook request failed",
	}
)

// Code returns the DomainError code found in err's chain, or "" if none.
func Code(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
