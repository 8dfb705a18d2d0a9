package shipping

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/telartis/picqer-ontime/httpServices/ontime"
	"github.com/telartis/picqer-ontime/types/shipment"
)

// CarrierKey identifies this carrier towards Picqer.
const CarrierKey = "ontime"

// Order record fields.
const (
	fieldIdentifier = "nummer"
	fieldTracking   = "track"
	fieldLabel      = "label"
)

type LabelFetcher interface {
	FetchLabel(ctx context.Context, url string) ([]byte, error)
}

// AssembleLabel turns the single order of a CREATE result into a label
// response. Any other number of orders is an error.
func AssembleLabel(ctx context.Context, result *ontime.Result, fetcher LabelFetcher) (*shipment.LabelResponse, error) {
	orders := result.Records(ontime.OperationCreate)
	if len(orders) != 1 {
		msg := fmt.Sprintf("expected exactly 1 order, carrier returned %d", len(orders))
		if remarks := result.RemarksText(); remarks != "" {
			msg += ": " + remarks
		}
		return nil, &ontime.Error{
			Kind:       ontime.KindOrderCount,
			Message:    msg,
			StatusCode: http.StatusBadRequest,
		}
	}

	order := orders[0]
	label, err := fetcher.FetchLabel(ctx, strings.TrimSpace(ontime.StringField(order, fieldLabel)))
	if err != nil {
		return nil, err
	}

	return &shipment.LabelResponse{
		Identifier:       ontime.StringField(order, fieldIdentifier),
		TrackingURL:      ontime.StringField(order, fieldTracking),
		CarrierKey:       CarrierKey,
		LabelContentsPDF: base64.StdEncoding.EncodeToString(label),
	}, nil
}

// AssembleListing passes a listing collection through under its own key.
func AssembleListing(result *ontime.Result, op ontime.Operation) shipment.ListingResponse {
	records := result.Records(op)
	if records == nil {
		records = []any{}
	}
	return shipment.ListingResponse{
		"remarks":      result.RemarksText(),
		op.ResultKey(): records,
	}
}
