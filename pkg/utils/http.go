package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	TypeValidationError = "validation_error"
	TypeClientError     = "client_error"
	TypeServerError     = "server_error"
)

const (
	CodeRequired         = "required"
	CodeInvalid          = "invalid"
	CodeInvalidChoice    = "invalid_choice"
	CodeMaxLength        = "max_length"
	CodeParseError       = "parse_error"
	CodeNotFound         = "not_found"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeDuplicate        = "duplicate_error"
	CodeServerError      = "error"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ErrorDetail is a single problem found in a request
// swagger:model ErrorDetail
type ErrorDetail struct {
	Code   string  `json:"code" example:"invalid_quantity"`
	Detail string  `json:"detail" example:"Quantity must be greater than 0 for all items."`
	Attr   *string `json:"attr" example:"non_field_errors"`
}

// ErrorResponse is the envelope of every error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Type   string        `json:"type" example:"validation_error"`
	Errors []ErrorDetail `json:"errors"`
}

func errorType(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return TypeServerError
	case status == http.StatusBadRequest:
		return TypeValidationError
	default:
		return TypeClientError
	}
}

// WriteErrors writes the envelope; the type is derived from the status.
func WriteErrors(w http.ResponseWriter, status int, details ...ErrorDetail) error {
	return WriteJSON(w, ErrorResponse{Type: errorType(status), Errors: details}, status)
}

// WriteError writes a single error that is not bound to a request attribute.
func WriteError(w http.ResponseWriter, code, detail string, status int) error {
	return WriteErrors(w, status, ErrorDetail{Code: code, Detail: detail})
}

// WriteFieldError writes a single validation error bound to attr.
func WriteFieldError(w http.ResponseWriter, code, detail, attr string) error {
	return WriteErrors(w, http.StatusBadRequest, ErrorDetail{Code: code, Detail: detail, Attr: &attr})
}

func WriteNotFound(w http.ResponseWriter) error {
	return WriteError(w, CodeNotFound, "Not found.", http.StatusNotFound)
}

func WriteMethodNotAllowed(w http.ResponseWriter, r *http.Request) error {
	return WriteError(w, CodeMethodNotAllowed, fmt.Sprintf("Method %q not allowed.", r.Method), http.StatusMethodNotAllowed)
}

func WriteInternalError(w http.ResponseWriter) error {
	return WriteError(w, CodeServerError, "A server error occurred.", http.StatusInternalServerError)
}

func WriteParseError(w http.ResponseWriter, err error) error {
	return WriteErrors(w, http.StatusBadRequest, ErrorDetail{
		Code:   CodeParseError,
		Detail: "JSON parse error - " + err.Error(),
	})
}

// WriteValidationError converts validator errors into one detail per field.
func WriteValidationError(w http.ResponseWriter, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return WriteErrors(w, http.StatusBadRequest, ErrorDetail{Code: CodeInvalid, Detail: err.Error()})
	}

	details := make([]ErrorDetail, 0, len(ve))
	for _, fe := range ve {
		attr := attrFromNamespace(fe.Namespace())
		details = append(details, ErrorDetail{
			Code:   tagCode(fe.Tag()),
			Detail: tagDetail(fe),
			Attr:   &attr,
		})
	}
	return WriteErrors(w, http.StatusBadRequest, details...)
}

func tagCode(tag string) string {
	switch tag {
	case "required":
		return CodeRequired
	case "oneof":
		return CodeInvalidChoice
	case "max":
		return CodeMaxLength
	}
	return CodeInvalid
}

func tagDetail(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	}
	return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
}

var indexRe = regexp.MustCompile(`\[(\d+)\]`)

// attrFromNamespace turns "Request.menuItems[0].quantity" into "menuItems.0.quantity".
func attrFromNamespace(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return indexRe.ReplaceAllString(ns, ".$1")
}

// JSONTagName makes validator report fields by their json names.
func JSONTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// HandlerFunc adapts a response writer helper to an http.HandlerFunc.
func HandlerFunc(fn func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r)
	}
}
