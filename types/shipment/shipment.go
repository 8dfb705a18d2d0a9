package shipment

import "fmt"

// ShipmentRequest is the body Picqer posts to a custom shipping method.
type ShipmentRequest struct {
	User      User     `json:"user"`
	Reference string   `json:"reference"`
	Sender    Sender   `json:"sender"`
	Picklist  Picklist `json:"picklist"`
	Weight    int      `json:"weight"`
}

type User struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

type Sender struct {
	Name        string `json:"name"`
	ContactName string `json:"contactname"`
	Address     string `json:"address"`
	Address2    string `json:"address2"`
	Zipcode     string `json:"zipcode"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Telephone   string `json:"telephone"`
}

type Picklist struct {
	DeliveryName     string `json:"deliveryname"`
	DeliveryContact  string `json:"deliverycontact"`
	DeliveryAddress  string `json:"deliveryaddress"`
	DeliveryAddress2 string `json:"deliveryaddress2"`
	DeliveryZipcode  string `json:"deliveryzipcode"`
	DeliveryCity     string `json:"deliverycity"`
	DeliveryCountry  string `json:"deliverycountry"`
	Telephone        string `json:"telephone"`
	EmailAddress     string `json:"emailaddress"`
}

// Validate rejects requests that can never produce a goods line.
func (r *ShipmentRequest) Validate() error {
	if r.Weight < 0 {
		return fmt.Errorf("weight must not be negative, got %d", r.Weight)
	}
	return nil
}

// LabelResponse is returned to Picqer when a shipment was created.
type LabelResponse struct {
	Identifier       string `json:"identifier"`
	TrackingURL      string `json:"trackingurl"`
	CarrierKey       string `json:"carrier_key"`
	LabelContentsPDF string `json:"label_contents_pdf"`
}

// ListingResponse carries the remarks and the raw collection of a listing
// call under its result key.
type ListingResponse map[string]any
