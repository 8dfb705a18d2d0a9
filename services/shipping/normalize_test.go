package shipping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telartis/picqer-ontime/services/shipping"
)

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		in             string
		street, number string
	}{
		{"Kattendijkdok 5A", "Kattendijkdok", "5A"},
		{"5A, Kattendijkdok", "Kattendijkdok", "5A"},
		{"5A Kattendijkdok", "Kattendijkdok", "5A"},
		{"NoNumberHere", "NoNumberHere", ""},
		{"Rue de la Loi 16 bus 3", "Rue de la Loi", "16 bus 3"},
		{"  Grote Markt 1,\n", "Grote Markt", "1"},
		{"Kerkstraat,  12", "Kerkstraat", "12"},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			street, number := shipping.SplitAddress(tt.in)
			assert.Equal(t, tt.street, street)
			assert.Equal(t, tt.number, number)
		})
	}
}

func TestNormalizeCountry(t *testing.T) {
	tests := map[string]string{
		"Belgium":         "BE",
		"België":          "BE",
		"belgie":          "BE",
		"BELGIQUE":        "BE",
		" Luxemburg ":     "LU",
		"Luxembourg":      "LU",
		"Nederland":       "NL",
		"The Netherlands": "NL",
		"France":          "France",
		"BE":              "BE",
		"":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, shipping.NormalizeCountry(in), in)
	}
}

func TestNormalizeCountry_DecomposedInput(t *testing.T) {
	// "België" with a combining diaeresis
	assert.Equal(t, "BE", shipping.NormalizeCountry("Belgie\u0308"))
}

func TestNormalizePhone(t *testing.T) {
	tests := map[string]string{
		"+32 475 12 34 56":   "0032475123456",
		"+32 (0)3 123.45.67": "0032031234567",
		"03/123 45 67":       "031234567",
		"0032475123456":      "0032475123456",
		"":                   "",
		" +31-20-1234567 ":   "0031201234567",
	}
	for in, want := range tests {
		assert.Equal(t, want, shipping.NormalizePhone(in), in)
	}
}

func TestNormalizers_AreFixedPoints(t *testing.T) {
	for _, country := range []string{"België", "Luxembourg", "holland", "France", "DE"} {
		once := shipping.NormalizeCountry(country)
		assert.Equal(t, once, shipping.NormalizeCountry(once), country)
	}
	for _, phone := range []string{"+32 475 12 34 56", "03/123 45 67", "+31 (0)20 1234567"} {
		once := shipping.NormalizePhone(phone)
		assert.Equal(t, once, shipping.NormalizePhone(once), phone)
	}
}
