package shipping

import (
	"regexp"
	"strings"
)

var (
	// "Kattendijkdok 5A"
	streetFirstPattern = regexp.MustCompile(`(?s)^(\D+)\s+(\d.*)$`)
	// "5A, Kattendijkdok"
	numberFirstPattern = regexp.MustCompile(`(?s)^(\d\S*)\s+(\D+)$`)
)

const addressCutset = " \t\r\n,"

// SplitAddress separates a free-text address into street and house number.
// An address without a number is all street.
func SplitAddress(address string) (street, number string) {
	address = strings.Trim(address, addressCutset)
	if m := streetFirstPattern.FindStringSubmatch(address); m != nil {
		return strings.Trim(m[1], addressCutset), strings.Trim(m[2], addressCutset)
	}
	if m := numberFirstPattern.FindStringSubmatch(address); m != nil {
		return strings.Trim(m[2], addressCutset), strings.Trim(m[1], addressCutset)
	}
	return address, ""
}
