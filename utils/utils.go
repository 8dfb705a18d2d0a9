package utils

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/telartis/picqer-ontime/httpServices/ontime"
	"github.com/telartis/picqer-ontime/types"
)

const labelPlaceholder = "[LABEL_CONTENT_REMOVED]"

// sanitizeResponseBody keeps audit files small by replacing the base64 label.
func sanitizeResponseBody(body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		if _, ok := payload["label_contents_pdf"]; ok {
			payload["label_contents_pdf"] = labelPlaceholder
			if jsonBytes, err := json.Marshal(payload); err == nil {
				return string(jsonBytes)
			}
		}
	}

	content := string(body)
	if len(content) > 1000 && isLikelyBase64(content) {
		return "[LARGE_RESPONSE_BODY_WITH_POSSIBLE_FILE_CONTENT]"
	}
	return content
}

// isLikelyBase64 detects if content looks like base64
func isLikelyBase64(content string) bool {
	if len(content) < 100 {
		return false
	}

	base64Chars := 0
	for _, char := range content {
		if (char >= 'A' && char <= 'Z') ||
			(char >= 'a' && char <= 'z') ||
			(char >= '0' && char <= '9') ||
			char == '+' || char == '/' || char == '=' {
			base64Chars++
		}
	}

	return float64(base64Chars)/float64(len(content)) > 0.8
}

// CreateSanitizedLogEntry copies everything the audit log needs out of the
// fiber context, whose buffers are reused after the handler returns.
func CreateSanitizedLogEntry(c *fiber.Ctx, op ontime.Operation, trace *ontime.Trace) types.LogEntry {
	entry := types.LogEntry{
		Operation:    string(op),
		Method:       strings.Clone(c.Method()),
		URL:          strings.Clone(c.OriginalURL()),
		RequestBody:  string(c.Body()),
		ResponseBody: sanitizeResponseBody(c.Response().Body()),
		StatusCode:   c.Response().StatusCode(),
		CreatedAt:    time.Now(),
	}
	if trace != nil {
		entry.TraceID = trace.ID
		entry.CarrierRequest = trace.RequestBody
		entry.CarrierResponse = trace.ResponseBody
	}
	return entry
}
