package ontime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "body only",
			in:   "<html><head><title>Error</title><style>p{}</style></head><body><p>Service unavailable</p></body></html>",
			want: "Service unavailable",
		},
		{
			name: "no body tag",
			in:   "<b>Fatal</b> error:   out of memory",
			want: "Fatal error: out of memory",
		},
		{
			name: "non breaking spaces",
			in:   "<body>a&nbsp;&nbsp;b</body>",
			want: "a b",
		},
		{
			name: "newline runs",
			in:   "<body>first\r\n\r\n\r\n\r\n  second  \n third</body>",
			want: "first\n\nsecond\nthird",
		},
		{
			name: "plain text",
			in:   "  Internal Server Error \n",
			want: "Internal Server Error",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, plainText(tt.in))
		})
	}
}
