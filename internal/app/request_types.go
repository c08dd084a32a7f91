package app

// AddItemRequest is the input for adding a pre-filled line item row.
// Quantity and UnitPrice are raw field values; malformed input coerces to
// zero rather than erroring.
type AddItemRequest struct {
	Description string
	Quantity    string
	UnitPrice   string
}
