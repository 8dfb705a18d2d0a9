package shipping

import (
	"strings"

	"github.com/telartis/picqer-ontime/httpServices/ontime"
)

// ContactFields are the raw address fields of one side of a shipment.
type ContactFields struct {
	Company  string
	Contact  string
	Address  string
	Address2 string
	Postcode string
	City     string
	Country  string
	Phone    string
}

func BuildContact(f ContactFields) ontime.Contact {
	street, number := SplitAddress(f.Address)
	return ontime.Contact{
		Company:     strings.TrimSpace(f.Company),
		Contact:     strings.TrimSpace(f.Contact),
		Street:      street,
		HouseNumber: number,
		Address2:    strings.TrimSpace(f.Address2),
		Postcode:    strings.TrimSpace(f.Postcode),
		City:        strings.TrimSpace(f.City),
		Country:     NormalizeCountry(f.Country),
		Phone:       NormalizePhone(f.Phone),
	}
}
