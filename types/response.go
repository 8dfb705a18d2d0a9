package types

// ErrorResponse is the only error shape returned to webhook callers.
type ErrorResponse struct {
	Error string `json:"error"`
}
