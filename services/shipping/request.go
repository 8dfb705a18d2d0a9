package shipping

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/telartis/picqer-ontime/httpServices/ontime"
	"github.com/telartis/picqer-ontime/types/shipment"
)

// NotNeutral asks the carrier to show the sender on the label.
const NotNeutral = "N"

// Settings are the fixed shipping defaults of this account.
type Settings struct {
	SenderEmail string
	SenderPhone string
	Tiers       []Tier
}

// RequestBuilder turns webhook input into carrier envelopes.
type RequestBuilder struct {
	creds    ontime.Credentials
	settings Settings
}

func NewRequestBuilder(creds ontime.Credentials, settings Settings) *RequestBuilder {
	if len(settings.Tiers) == 0 {
		settings.Tiers = DefaultTiers()
	}
	return &RequestBuilder{creds: creds, settings: settings}
}

// Listing builds the bare envelope used by the product and country calls.
func (b *RequestBuilder) Listing(op ontime.Operation) ontime.Envelope {
	return ontime.NewEnvelope(op, b.creds)
}

// Create builds the CREATE envelope for one shipment.
func (b *RequestBuilder) Create(req shipment.ShipmentRequest) (ontime.Envelope, error) {
	if err := req.Validate(); err != nil {
		return ontime.Envelope{}, &ontime.Error{
			Kind:       ontime.KindInvalidInput,
			Message:    err.Error(),
			StatusCode: http.StatusBadRequest,
			Err:        err,
		}
	}

	product := SelectProduct(b.settings.Tiers, req.Weight)
	if product == "" {
		return ontime.Envelope{}, &ontime.Error{
			Kind:       ontime.KindNoProductTier,
			Message:    fmt.Sprintf("no product available for a weight of %g kg", WeightKG(req.Weight)),
			StatusCode: http.StatusBadRequest,
		}
	}

	env := ontime.NewEnvelope(ontime.OperationCreate, b.creds)
	env.Sender = &ontime.Sender{
		Contact:   strings.TrimSpace(strings.TrimSpace(req.User.FirstName) + " " + strings.TrimSpace(req.User.LastName)),
		Email:     b.settings.SenderEmail,
		Reference: strings.TrimSpace(req.Reference),
		Phone:     NormalizePhone(b.settings.SenderPhone),
	}
	env.Order = &ontime.OrderOptions{Neutral: NotNeutral}

	pickupPhone := req.Sender.Telephone
	if strings.TrimSpace(pickupPhone) == "" {
		pickupPhone = b.settings.SenderPhone
	}
	pickup := BuildContact(ContactFields{
		Company:  req.Sender.Name,
		Contact:  req.Sender.ContactName,
		Address:  req.Sender.Address,
		Address2: req.Sender.Address2,
		Postcode: req.Sender.Zipcode,
		City:     req.Sender.City,
		Country:  req.Sender.Country,
		Phone:    pickupPhone,
	})
	env.Pickup = &pickup

	env.Delivery = &ontime.DeliveryContact{
		Contact: BuildContact(ContactFields{
			Company:  req.Picklist.DeliveryName,
			Contact:  req.Picklist.DeliveryContact,
			Address:  req.Picklist.DeliveryAddress,
			Address2: req.Picklist.DeliveryAddress2,
			Postcode: req.Picklist.DeliveryZipcode,
			City:     req.Picklist.DeliveryCity,
			Country:  req.Picklist.DeliveryCountry,
			Phone:    req.Picklist.Telephone,
		}),
		TrackEmail: strings.TrimSpace(req.Picklist.EmailAddress),
	}

	env.Goods = []ontime.Goods{{
		Item: ontime.GoodsLine{
			Product:  product,
			Quantity: 1,
			WeightKG: float64(req.Weight) / 1000,
		},
	}}
	return env, nil
}
