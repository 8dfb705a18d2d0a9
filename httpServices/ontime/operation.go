package ontime

import (
	"fmt"
	"strings"
)

// Operation is the carrier function named in the "verwerking" field.
type Operation string

const (
	OperationCreate    Operation = "CREATE"
	OperationProducts  Operation = "PRODUCT"
	OperationCountries Operation = "LANDEN"
)

// resultShape names the response collection an operation answers with and,
// for order collections, the per-record wrapper key to unwrap.
type resultShape struct {
	key    string
	unwrap string
}

var resultShapes = map[Operation]resultShape{
	OperationCreate:    {key: "opdrachten", unwrap: "opdracht"},
	OperationProducts:  {key: "producten"},
	OperationCountries: {key: "landen"},
}

var operationAliases = map[string]Operation{
	"create":    OperationCreate,
	"shipment":  OperationCreate,
	"product":   OperationProducts,
	"products":  OperationProducts,
	"producten": OperationProducts,
	"countries": OperationCountries,
	"landen":    OperationCountries,
}

// Operations lists every supported operation in a stable order.
func Operations() []Operation {
	return []Operation{OperationCreate, OperationProducts, OperationCountries}
}

// ParseOperation maps an external name onto a supported operation.
func ParseOperation(name string) (Operation, error) {
	name = strings.TrimSpace(name)
	if op := Operation(strings.ToUpper(name)); op.Valid() {
		return op, nil
	}
	if op, ok := operationAliases[strings.ToLower(name)]; ok {
		return op, nil
	}
	return "", &Error{
		Kind:       KindUnknownOperation,
		Message:    fmt.Sprintf("unknown operation %q", name),
		StatusCode: 400,
	}
}

func (o Operation) Valid() bool {
	_, ok := resultShapes[o]
	return ok
}

// ResultKey is the response field holding this operation's collection.
func (o Operation) ResultKey() string {
	return resultShapes[o].key
}

// UnwrapKey is the singular wrapper around each record, empty when records
// are not wrapped.
func (o Operation) UnwrapKey() string {
	return resultShapes[o].unwrap
}
