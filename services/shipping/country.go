package shipping

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var countryAliases = map[string][]string{
	"BE": {"belgie", "belgië", "belgium", "belgique", "belgien"},
	"LU": {"luxemburg", "luxembourg", "lëtzebuerg"},
	"NL": {"nederland", "netherlands", "the netherlands", "holland", "pays-bas", "niederlande"},
}

var countryCodes = func() map[string]string {
	codes := make(map[string]string)
	for code, aliases := range countryAliases {
		for _, alias := range aliases {
			codes[foldCountry(alias)] = code
		}
	}
	return codes
}()

func foldCountry(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// NormalizeCountry returns the ISO alpha-2 code for a known country name and
// the trimmed input otherwise.
func NormalizeCountry(country string) string {
	country = strings.TrimSpace(country)
	if code, ok := countryCodes[foldCountry(country)]; ok {
		return code
	}
	return country
}
