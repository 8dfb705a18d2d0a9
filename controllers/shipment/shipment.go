package shipment

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/telartis/picqer-ontime/httpServices/ontime"
	"github.com/telartis/picqer-ontime/logger"
	"github.com/telartis/picqer-ontime/services/shipping"
	"github.com/telartis/picqer-ontime/types"
	shipmentTypes "github.com/telartis/picqer-ontime/types/shipment"
	"github.com/telartis/picqer-ontime/utils"
)

// ShipmentController handles the Picqer custom shipping method webhooks.
type ShipmentController struct {
	Service *shipping.Service
	Logger  *logger.AsyncLogger
	redact  func(string) string
}

// NewShipmentController creates a new shipment controller
func NewShipmentController(service *shipping.Service, asyncLogger *logger.AsyncLogger, redactor ontime.Redactor) *ShipmentController {
	return &ShipmentController{
		Service: service,
		Logger:  asyncLogger,
		redact:  redactor.Redact,
	}
}

// Helper function to send response and log in one call
func (sc *ShipmentController) sendResponseWithLog(c *fiber.Ctx, op ontime.Operation, trace *ontime.Trace, data any, err error) error {
	status := ontime.StatusCode(err)
	if err != nil {
		var oe *ontime.Error
		if !errors.As(err, &oe) {
			logger.Error("Unclassified shipment failure", err)
		}
		data = types.ErrorResponse{Error: sc.redact(err.Error())}
	}

	result := c.Status(status).JSON(data)
	if sc.Logger != nil {
		sc.Logger.Log(utils.CreateSanitizedLogEntry(c, op, trace))
	}
	return result
}

// Create books a shipment and returns its label
func (sc *ShipmentController) Create(c *fiber.Ctx) error {
	var req shipmentTypes.ShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return sc.sendResponseWithLog(c, ontime.OperationCreate, nil, nil, &ontime.Error{
			Kind:       ontime.KindInvalidInput,
			Message:    "Invalid request body: " + err.Error(),
			StatusCode: fiber.StatusBadRequest,
			Err:        err,
		})
	}

	label, trace, err := sc.Service.CreateShipment(c.UserContext(), req)
	return sc.sendResponseWithLog(c, ontime.OperationCreate, trace, label, err)
}

// Products lists the carrier products available to this account
func (sc *ShipmentController) Products(c *fiber.Ctx) error {
	return sc.list(c, ontime.OperationProducts)
}

// Countries lists the countries the carrier delivers to
func (sc *ShipmentController) Countries(c *fiber.Ctx) error {
	return sc.list(c, ontime.OperationCountries)
}

func (sc *ShipmentController) list(c *fiber.Ctx, op ontime.Operation) error {
	listing, trace, err := sc.Service.List(c.UserContext(), op)
	return sc.sendResponseWithLog(c, op, trace, listing, err)
}

// Dispatch runs the operation named by the action query parameter
func (sc *ShipmentController) Dispatch(c *fiber.Ctx) error {
	action := c.Query("action")
	data, trace, err := sc.Service.Dispatch(c.UserContext(), action, c.Body())
	return sc.sendResponseWithLog(c, dispatchedOperation(action, trace), trace, data, err)
}

// dispatchedOperation labels a dispatch call in the audit log. Unknown
// actions are audited without an operation.
func dispatchedOperation(action string, trace *ontime.Trace) ontime.Operation {
	if trace != nil {
		return trace.Operation
	}
	if op, err := ontime.ParseOperation(action); err == nil {
		return op
	}
	return ""
}
