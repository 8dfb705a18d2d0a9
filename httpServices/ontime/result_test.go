package ontime

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFields(t *testing.T, body string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var fields map[string]any
	require.NoError(t, dec.Decode(&fields))
	return fields
}

func TestParseOperation(t *testing.T) {
	tests := []struct {
		in   string
		want Operation
	}{
		{"CREATE", OperationCreate},
		{"create", OperationCreate},
		{" shipment ", OperationCreate},
		{"PRODUCT", OperationProducts},
		{"producten", OperationProducts},
		{"products", OperationProducts},
		{"LANDEN", OperationCountries},
		{"countries", OperationCountries},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			op, err := ParseOperation(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
		})
	}

	for _, bad := range []string{"", "delete", "label", "opdrachten"} {
		_, err := ParseOperation(bad)
		assert.Error(t, err, bad)
		assert.Equal(t, 400, StatusCode(err))
	}
}

func TestOperationResultKeys(t *testing.T) {
	for _, op := range Operations() {
		assert.NotEmpty(t, op.ResultKey(), op)
	}
	assert.Equal(t, "opdrachten", OperationCreate.ResultKey())
	assert.Equal(t, "opdracht", OperationCreate.UnwrapKey())
	assert.Equal(t, "producten", OperationProducts.ResultKey())
	assert.Empty(t, OperationProducts.UnwrapKey())
	assert.Equal(t, "landen", OperationCountries.ResultKey())
	assert.Empty(t, OperationCountries.UnwrapKey())
}

func TestRecords_UnwrapsOrders(t *testing.T) {
	result := newResult(decodeFields(t, `{
		"status": "SUCCESS",
		"remarks": [{"remark": "a"}, {"remark": "b"}],
		"opdrachten": [{"opdracht": {"nummer": "X123", "track": "https://track.example/X123"}}]
	}`))

	orders := result.Records(OperationCreate)
	require.Len(t, orders, 1)
	assert.Equal(t, "X123", StringField(orders[0], "nummer"))
	assert.Equal(t, "https://track.example/X123", StringField(orders[0], "track"))
	assert.Equal(t, "", StringField(orders[0], "label"))
	assert.Equal(t, "a b", result.RemarksText())
}

func TestRecords_ListingPassThrough(t *testing.T) {
	result := newResult(decodeFields(t, `{
		"status": "SUCCESS",
		"landen": [{"land": {"code": "BE"}}, {"land": {"code": "NL"}}]
	}`))

	want := []any{
		map[string]any{"land": map[string]any{"code": "BE"}},
		map[string]any{"land": map[string]any{"code": "NL"}},
	}
	if diff := cmp.Diff(want, result.Records(OperationCountries)); diff != "" {
		t.Errorf("Records mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, result.Remarks)
}

func TestRecords_ObjectKeyedByPosition(t *testing.T) {
	result := newResult(decodeFields(t, `{
		"status": "SUCCESS",
		"opdrachten": {"0": {"opdracht": {"nummer": 42}}, "1": {"opdracht": {"nummer": 43}}}
	}`))

	orders := result.Records(OperationCreate)
	require.Len(t, orders, 2)
	assert.Equal(t, "42", StringField(orders[0], "nummer"))
	assert.Equal(t, "43", StringField(orders[1], "nummer"))
}

func TestParseRemarks_AcceptsPlainStrings(t *testing.T) {
	assert.Equal(t, []string{"x", "y"}, parseRemarks([]any{"x", map[string]any{"remark": "y"}, 7}))
	assert.Nil(t, parseRemarks(nil))
}

func TestStringField_Numbers(t *testing.T) {
	record := map[string]any{"f": float64(12345678), "n": json.Number("900"), "nil": nil}
	assert.Equal(t, "12345678", StringField(record, "f"))
	assert.Equal(t, "900", StringField(record, "n"))
	assert.Equal(t, "", StringField(record, "nil"))
	assert.Equal(t, "", StringField("not a record", "f"))
}
