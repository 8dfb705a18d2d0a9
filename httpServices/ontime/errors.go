package ontime

import (
	"errors"
	"net/http"
)

// ErrorKind classifies where a carrier round trip failed.
type ErrorKind int

const (
	KindEncode ErrorKind = iota + 1
	KindTransport
	KindResponseDecode
	KindMissingStatus
	KindRemoteStatus
	KindMissingResultKey
	KindOrderCount
	KindLabelFetch
	KindNoProductTier
	KindUnknownOperation
	KindInvalidInput
)

var kindNames = map[ErrorKind]string{
	KindEncode:           "encode",
	KindTransport:        "transport",
	KindResponseDecode:   "response_decode",
	KindMissingStatus:    "missing_status",
	KindRemoteStatus:     "remote_status",
	KindMissingResultKey: "missing_result_key",
	KindOrderCount:       "order_count",
	KindLabelFetch:       "label_fetch",
	KindNoProductTier:    "no_product_tier",
	KindUnknownOperation: "unknown_operation",
	KindInvalidInput:     "invalid_input",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error is the single error type surfaced to callers. Message is already
// redacted and safe to return to the webhook caller.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// StatusCode returns the outward HTTP status for the outcome of a call.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var oe *Error
	if errors.As(err, &oe) && oe.StatusCode != 0 {
		return oe.StatusCode
	}
	return http.StatusBadRequest
}

// failureStatus keeps an error code reported by the transport and falls
// back to 400 otherwise.
func failureStatus(httpStatus int) int {
	if httpStatus >= http.StatusBadRequest {
		return httpStatus
	}
	return http.StatusBadRequest
}
