package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeResponseBody(t *testing.T) {
	label := `{"carrier_key":"ontime","identifier":"X123","label_contents_pdf":"JVBERi0xLjQ="}`
	assert.JSONEq(t, `{"carrier_key":"ontime","identifier":"X123","label_contents_pdf":"[LABEL_CONTENT_REMOVED]"}`, sanitizeResponseBody([]byte(label)))

	errorBody := `{"error":"ERROR invalid address"}`
	assert.Equal(t, errorBody, sanitizeResponseBody([]byte(errorBody)))

	blob := strings.Repeat("QUJD", 400)
	assert.Equal(t, "[LARGE_RESPONSE_BODY_WITH_POSSIBLE_FILE_CONTENT]", sanitizeResponseBody([]byte(blob)))
}

func TestIsLikelyBase64(t *testing.T) {
	assert.False(t, isLikelyBase64("short"))
	assert.True(t, isLikelyBase64(strings.Repeat("abcd", 50)))
	assert.False(t, isLikelyBase64(strings.Repeat("{} ,", 50)))
}
