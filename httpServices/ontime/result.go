package ontime

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// StatusSuccess is the only status value the carrier uses for success.
const StatusSuccess = "SUCCESS"

// Result is a decoded carrier response that passed every status check.
// Fields holds the full decoded object unmodified.
type Result struct {
	Status  string
	Remarks []string
	Fields  map[string]any
}

func newResult(fields map[string]any) *Result {
	return &Result{
		Status:  fmt.Sprint(fields["status"]),
		Remarks: parseRemarks(fields["remarks"]),
		Fields:  fields,
	}
}

// RemarksText joins the remote remarks into one line.
func (r *Result) RemarksText() string {
	return strings.Join(r.Remarks, " ")
}

// Records extracts op's result collection, unwrapping each element's
// singular wrapper when the operation defines one.
func (r *Result) Records(op Operation) []any {
	items := asList(r.Fields[op.ResultKey()])
	unwrap := op.UnwrapKey()
	if unwrap == "" {
		return items
	}
	records := make([]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			if inner, ok := m[unwrap]; ok {
				records = append(records, inner)
				continue
			}
		}
		records = append(records, item)
	}
	return records
}

// asList accepts both JSON arrays and objects keyed by position.
func asList(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		list := make([]any, 0, len(keys))
		for _, k := range keys {
			list = append(list, t[k])
		}
		return list
	default:
		return []any{t}
	}
}

func parseRemarks(v any) []string {
	var remarks []string
	for _, item := range asList(v) {
		switch t := item.(type) {
		case string:
			remarks = append(remarks, t)
		case map[string]any:
			if remark, ok := t["remark"]; ok && remark != nil {
				remarks = append(remarks, fmt.Sprint(remark))
			}
		}
	}
	return remarks
}

// StringField reads key from a record, coercing absent or null values to "".
func StringField(record any, key string) string {
	m, ok := record.(map[string]any)
	if !ok {
		return ""
	}
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
