package types

import "time"

// LogEntry is one audited webhook call.
type LogEntry struct {
	TraceID         string    `json:"trace_id,omitempty"`
	Operation       string    `json:"operation,omitempty"`
	Method          string    `json:"method"`
	URL             string    `json:"url"`
	RequestBody     string    `json:"request_body"`
	ResponseBody    string    `json:"response_body"`
	CarrierRequest  string    `json:"carrier_request,omitempty"`
	CarrierResponse string    `json:"carrier_response,omitempty"`
	StatusCode      int       `json:"status_code"`
	CreatedAt       time.Time `json:"created_at"`
}
