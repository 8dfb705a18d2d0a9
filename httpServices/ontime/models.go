package ontime

import (
	"fmt"
	"strings"
)

// Environment selects the carrier's test or live system.
type Environment string

const (
	EnvironmentTest Environment = "TEST"
	EnvironmentLive Environment = "LIVE"
)

func ParseEnvironment(s string) (Environment, error) {
	switch env := Environment(strings.ToUpper(strings.TrimSpace(s))); env {
	case "":
		return EnvironmentTest, nil
	case EnvironmentTest, EnvironmentLive:
		return env, nil
	default:
		return "", fmt.Errorf("environment must be TEST or LIVE, got %q", s)
	}
}

// Credentials identify the account on every carrier call.
type Credentials struct {
	User          string
	AccountNumber string
	APIPassword   string
	Environment   Environment
}

// Envelope is the request body posted to the carrier. Listing operations
// only carry the credential fields.
type Envelope struct {
	Operation     Operation        `json:"verwerking"`
	User          string           `json:"gebruiker"`
	AccountNumber string           `json:"klantnr"`
	APIPassword   string           `json:"apipswd"`
	Environment   Environment      `json:"omgeving"`
	Sender        *Sender          `json:"verzender,omitempty"`
	Order         *OrderOptions    `json:"opdracht,omitempty"`
	Pickup        *Contact         `json:"ophalen,omitempty"`
	Delivery      *DeliveryContact `json:"leveren,omitempty"`
	Goods         []Goods          `json:"goederen,omitempty"`
}

// NewEnvelope returns the bare credentials envelope for op.
func NewEnvelope(op Operation, creds Credentials) Envelope {
	return Envelope{
		Operation:     op,
		User:          creds.User,
		AccountNumber: creds.AccountNumber,
		APIPassword:   creds.APIPassword,
		Environment:   creds.Environment,
	}
}

type Sender struct {
	Contact   string `json:"contact"`
	Email     string `json:"email"`
	Reference string `json:"referentie"`
	Phone     string `json:"tel"`
}

type OrderOptions struct {
	Neutral string `json:"neutraal"`
}

// Contact is an address block as the carrier expects it.
type Contact struct {
	Company     string `json:"bedrijf"`
	Contact     string `json:"contact"`
	Street      string `json:"straat"`
	HouseNumber string `json:"huisnr"`
	Address2    string `json:"adres2"`
	Postcode    string `json:"postcode"`
	City        string `json:"plaats"`
	Country     string `json:"land"`
	Phone       string `json:"tel"`
}

type DeliveryContact struct {
	Contact
	TrackEmail string `json:"track_email"`
}

type Goods struct {
	Item GoodsLine `json:"goed"`
}

type GoodsLine struct {
	Product  string  `json:"product"`
	Quantity int     `json:"aantal"`
	WeightKG float64 `json:"gewicht"`
}
