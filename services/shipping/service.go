package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/telartis/picqer-ontime/httpServices/ontime"
	"github.com/telartis/picqer-ontime/logger"
	"github.com/telartis/picqer-ontime/types/shipment"
)

// Carrier is the remote side of every operation.
type Carrier interface {
	Send(ctx context.Context, env ontime.Envelope) (*ontime.Result, *ontime.Trace, error)
	LabelFetcher
}

// Handler runs one operation on a raw request body.
type Handler func(ctx context.Context, body []byte) (any, *ontime.Trace, error)

type Service struct {
	carrier  Carrier
	builder  *RequestBuilder
	handlers map[ontime.Operation]Handler
}

func NewService(carrier Carrier, builder *RequestBuilder) *Service {
	s := &Service{carrier: carrier, builder: builder}
	s.handlers = map[ontime.Operation]Handler{
		ontime.OperationCreate:    s.handleCreate,
		ontime.OperationProducts:  s.listHandler(ontime.OperationProducts),
		ontime.OperationCountries: s.listHandler(ontime.OperationCountries),
	}
	return s
}

// CreateShipment books one shipment and returns its label. The trace is nil
// when the request was rejected before reaching the carrier.
func (s *Service) CreateShipment(ctx context.Context, req shipment.ShipmentRequest) (*shipment.LabelResponse, *ontime.Trace, error) {
	env, err := s.builder.Create(req)
	if err != nil {
		logger.Warning(fmt.Sprintf("Rejected shipment %q: %v", req.Reference, err))
		return nil, nil, err
	}

	result, trace, err := s.carrier.Send(ctx, env)
	if err != nil {
		return nil, trace, err
	}

	label, err := AssembleLabel(ctx, result, s.carrier)
	if err != nil {
		trace.StatusCode = ontime.StatusCode(err)
		return nil, trace, err
	}
	logger.Success(fmt.Sprintf("Shipment %q booked as %s", req.Reference, label.Identifier))
	return label, trace, nil
}

// List runs a listing operation.
func (s *Service) List(ctx context.Context, op ontime.Operation) (shipment.ListingResponse, *ontime.Trace, error) {
	if op == ontime.OperationCreate || !op.Valid() {
		return nil, nil, &ontime.Error{
			Kind:       ontime.KindUnknownOperation,
			Message:    fmt.Sprintf("%s is not a listing operation", op),
			StatusCode: http.StatusBadRequest,
		}
	}
	result, trace, err := s.carrier.Send(ctx, s.builder.Listing(op))
	if err != nil {
		return nil, trace, err
	}
	return AssembleListing(result, op), trace, nil
}

// Dispatch runs the operation named by an external string.
func (s *Service) Dispatch(ctx context.Context, name string, body []byte) (any, *ontime.Trace, error) {
	op, err := ontime.ParseOperation(name)
	if err != nil {
		return nil, nil, err
	}
	return s.handlers[op](ctx, body)
}

func (s *Service) handleCreate(ctx context.Context, body []byte) (any, *ontime.Trace, error) {
	var req shipment.ShipmentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, nil, &ontime.Error{
			Kind:       ontime.KindInvalidInput,
			Message:    fmt.Sprintf("invalid shipment request: %v", err),
			StatusCode: http.StatusBadRequest,
			Err:        err,
		}
	}
	label, trace, err := s.CreateShipment(ctx, req)
	if err != nil {
		return nil, trace, err
	}
	return label, trace, nil
}

func (s *Service) listHandler(op ontime.Operation) Handler {
	return func(ctx context.Context, _ []byte) (any, *ontime.Trace, error) {
		listing, trace, err := s.List(ctx, op)
		if err != nil {
			return nil, trace, err
		}
		return listing, trace, nil
	}
}
