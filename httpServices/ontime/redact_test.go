package ontime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactor(t *testing.T) {
	r := NewRedactor("hunter2")

	assert.Equal(t, "pw=********, again ********", r.Redact("pw=hunter2, again hunter2"))
	assert.Equal(t, "nothing secret", r.Redact("nothing secret"))

	dump := r.Dump(NewEnvelope(OperationProducts, Credentials{User: "u", APIPassword: "hunter2"}))
	assert.Contains(t, dump, "PRODUCT")
	assert.Contains(t, dump, RedactedPlaceholder)
	assert.NotContains(t, dump, "hunter2")
}

func TestRedactor_EmptySecret(t *testing.T) {
	assert.Equal(t, "unchanged", NewRedactor("").Redact("unchanged"))
}

func TestParseEnvironment(t *testing.T) {
	env, err := ParseEnvironment("")
	assert.NoError(t, err)
	assert.Equal(t, EnvironmentTest, env)

	env, err = ParseEnvironment(" live ")
	assert.NoError(t, err)
	assert.Equal(t, EnvironmentLive, env)

	_, err = ParseEnvironment("staging")
	assert.Error(t, err)
}

func TestRedactor_EscapedForms(t *testing.T) {
	secret := "Tr&ck<9>\"x\\"
	r := NewRedactor(secret)

	tests := map[string]string{
		"raw":    `pw=Tr&ck<9>"x\ end`,
		"json":   `{"apipswd":"Tr\u0026ck\u003c9\u003e\"x\\"}`,
		"quoted": `APIPassword: (string) (len=11) "Tr&ck<9>\"x\\"`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			out := r.Redact(in)
			assert.Contains(t, out, RedactedPlaceholder)
			assertNoSecret(t, out, secret)
		})
	}
	assert.Equal(t, `{"apipswd":"********"}`, r.Redact(tests["json"]))
}

// assertNoSecret fails when s holds secret in any spelling a reader could
// decode back to the original.
func assertNoSecret(t *testing.T, s, secret string) {
	t.Helper()
	for _, form := range secretForms(secret) {
		assert.NotContains(t, s, form)
	}
}
