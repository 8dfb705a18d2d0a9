package shipping

import (
	"regexp"
	"strings"
)

var nonDigitPattern = regexp.MustCompile(`\D`)

// NormalizePhone rewrites a leading + to 00 and drops every other non-digit.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		phone = "00" + phone[1:]
	}
	return nonDigitPattern.ReplaceAllString(phone, "")
}
