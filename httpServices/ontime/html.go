package ontime

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	multiSpacePattern   = regexp.MustCompile(`[ \t]+`)
	multiNewlinePattern = regexp.MustCompile(`\n{3,}`)
)

// plainText turns a non-JSON response (typically an HTML error page) into
// readable text: body content only, tags stripped, whitespace collapsed.
func plainText(body string) string {
	var all, inBody strings.Builder
	sawBody, bodyOpen := false, false

	z := html.NewTokenizer(strings.NewReader(body))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		switch tt {
		case html.StartTagToken, html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "body" {
				if tt == html.StartTagToken {
					sawBody, bodyOpen = true, true
				} else {
					bodyOpen = false
				}
			}
		case html.TextToken:
			text := string(z.Text())
			all.WriteString(text)
			if bodyOpen {
				inBody.WriteString(text)
			}
		}
	}

	s := all.String()
	if sawBody {
		s = inBody.String()
	}
	return cleanText(s)
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = multiSpacePattern.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")

	s = multiNewlinePattern.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
