package entities

import "fmt"

const (
	CodeInvalidMenuItems        = "invalid_menu_items"
	CodeInvalidQuantity         = "invalid_quantity"
	CodeInvalidStatus           = "invalid_status"
	CodeInvalidCustomerForOrder = "invalid_customer_for_order"
	CodeInvalidAlreadyFinalised = "invalid_already_finalised"
	CodeInvalidChoice           = "invalid_choice"
	CodeMaxLength               = "max_length"
)

const NonFieldErrors = "non_field_errors"

// ValidationError is a client error with a stable machine readable code.
type ValidationError struct {
	Code   string
	Detail string
	Attr   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

func NewValidationError(code, detail string) *ValidationError {
	return &ValidationError{Code: code, Detail: detail, Attr: NonFieldErrors}
}

var (
	ErrNoMenuItems = NewValidationError(CodeInvalidMenuItems,
		"At least one menu item must be provided to place an order.")
	ErrInvalidQuantity = NewValidationError(CodeInvalidQuantity,
		"Quantity must be greater than 0 for all items.")
	ErrQuantityTooLarge = NewValidationError(CodeInvalidQuantity,
		"Quantity must be less than or equal to 2147483647 for all items.")
	ErrItemIDTooLong = &ValidationError{Code: CodeMaxLength,
		Detail: "Ensure this field has no more than 255 characters.", Attr: "itemId"}
	ErrPaymentInfoIDTooLong = &ValidationError{Code: CodeMaxLength,
		Detail: "Ensure this field has no more than 255 characters.", Attr: "paymentInfoId"}
	ErrCustomerIDTooLong = &ValidationError{Code: CodeMaxLength,
		Detail: "Ensure this field has no more than 255 characters.", Attr: "customerId"}
	// raised by the database when a value does not fit its column
	ErrValueTooLong = NewValidationError(CodeMaxLength,
		"Ensure this value has no more than 255 characters.")
	ErrOrderNotPlaced = NewValidationError(CodeInvalidStatus,
		"Can only add items to an order in the `placed` state.")
	ErrWrongCustomer = NewValidationError(CodeInvalidCustomerForOrder,
		"The referenced customer is not linked to the order.")
	ErrAlreadyFinalised = NewValidationError(CodeInvalidAlreadyFinalised,
		"Can only apply action to an order that hasn't been finalised.")
)
