package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telartis/picqer-ontime/config"
	"github.com/telartis/picqer-ontime/httpServices/ontime"
	"github.com/telartis/picqer-ontime/services/shipping"
)

const testPassword = "s3cr3t-pa55"

// useCarrier points loadConfig at a fake carrier answering every call with body.
func useCarrier(t *testing.T, body string) {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = io.WriteString(w, "%PDF")
			return
		}
		_, _ = io.WriteString(w, strings.ReplaceAll(body, "{{url}}", srv.URL))
	}))
	t.Cleanup(srv.Close)

	orig := loadConfig
	loadConfig = func() (*config.Config, error) {
		return &config.Config{
			Carrier: ontime.Config{
				Endpoint: srv.URL,
				Credentials: ontime.Credentials{
					User: "picqer", AccountNumber: "12345", APIPassword: testPassword, Environment: ontime.EnvironmentTest,
				},
				Timeout: 5 * time.Second,
			},
			Shipping: shipping.Settings{Tiers: shipping.DefaultTiers()},
		}, nil
	}
	t.Cleanup(func() { loadConfig = orig })
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmdForTest()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const shipmentJSON = `{"reference":"ORD-1","sender":{"name":"Warehouse"},"picklist":{"deliveryname":"Acme","deliveryaddress":"Main 1"},"weight":2500}`

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ontime dev")
}

func TestCreateCmd_Stdin(t *testing.T) {
	useCarrier(t, `{"status":"SUCCESS","opdrachten":[{"opdracht":{"nummer":"X9","track":"t","label":"{{url}}/X9.pdf"}}]}`)

	out, err := run(t, shipmentJSON, "create")
	require.NoError(t, err)
	assert.Contains(t, out, `"identifier": "X9"`)
	assert.Contains(t, out, `"label_contents_pdf": "JVBERg=="`)
}

func TestCreateCmd_File(t *testing.T) {
	useCarrier(t, `{"status":"SUCCESS","opdrachten":[{"opdracht":{"nummer":"X10","label":"{{url}}/X10.pdf"}}]}`)
	path := filepath.Join(t.TempDir(), "shipment.json")
	require.NoError(t, os.WriteFile(path, []byte(shipmentJSON), 0o600))

	out, err := run(t, "", "create", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"identifier": "X10"`)
}

func TestCreateCmd_CarrierError(t *testing.T) {
	useCarrier(t, `{"status":"ERROR","remarks":[{"remark":"bad login `+testPassword+`"}]}`)

	out, err := run(t, shipmentJSON, "create")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, out, `"error": "ERROR bad login ********"`)
	assert.NotContains(t, out, testPassword)
}

func TestCreateCmd_BadInput(t *testing.T) {
	_, err := run(t, "{", "create")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding shipment request")
}

func TestListCmds(t *testing.T) {
	useCarrier(t, `{"status":"SUCCESS","producten":[{"code":"P1"}],"landen":[{"code":"BE"}]}`)

	out, err := run(t, "", "products")
	require.NoError(t, err)
	assert.Contains(t, out, `"producten"`)

	out, err = run(t, "", "countries")
	require.NoError(t, err)
	assert.Contains(t, out, `"landen"`)
}

func TestMigrateCmd_DatabaseDisabled(t *testing.T) {
	useCarrier(t, `{}`)

	_, err := run(t, "", "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST is not set")
}
