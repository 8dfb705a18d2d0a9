package ontime

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// RedactedPlaceholder replaces the API password in any outgoing text.
const RedactedPlaceholder = "********"

// Redactor scrubs a secret from diagnostic strings, in raw form and in the
// escaped forms produced by JSON encoding and Go quoting.
type Redactor struct {
	replacer *strings.Replacer
}

func NewRedactor(secret string) Redactor {
	if secret == "" {
		return Redactor{}
	}
	var pairs []string
	seen := make(map[string]bool)
	for _, form := range secretForms(secret) {
		if form == "" || seen[form] {
			continue
		}
		seen[form] = true
		pairs = append(pairs, form, RedactedPlaceholder)
	}
	return Redactor{replacer: strings.NewReplacer(pairs...)}
}

// secretForms lists the escaped spellings first so they win over the raw
// secret at the same position.
func secretForms(secret string) []string {
	forms := make([]string, 0, 3)
	if encoded, err := json.Marshal(secret); err == nil {
		forms = append(forms, unquote(string(encoded)))
	}
	forms = append(forms, unquote(strconv.Quote(secret)), secret)
	return forms
}

func unquote(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
}

func (r Redactor) Redact(s string) string {
	if r.replacer == nil {
		return s
	}
	return r.replacer.Replace(s)
}

// Dump renders v for an error message with the secret removed.
func (r Redactor) Dump(v any) string {
	cfg := spew.ConfigState{Indent: " ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
	return r.Redact(strings.TrimSpace(cfg.Sdump(v)))
}
