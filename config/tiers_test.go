package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTiers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTiers(t *testing.T) {
	tiers, err := LoadTiers(writeTiers(t, `
tiers:
  - max_kg: 10
    product: Pakket tot 10 kg
  - max_kg: 30.5
    product: Pakket tot 30 kg
`))
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.Equal(t, 30.5, tiers[1].MaxKG)
	assert.Equal(t, "Pakket tot 10 kg", tiers[0].Product)
}

func TestLoadTiers_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed", "tiers: [", "parsing"},
		{"empty", "tiers: []\n", "invalid"},
		{"descending", "tiers:\n  - {max_kg: 30, product: B}\n  - {max_kg: 10, product: A}\n", "invalid"},
		{"unnamed", "tiers:\n  - {max_kg: 10}\n", "invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTiers(writeTiers(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
