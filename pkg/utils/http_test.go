package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrFromNamespace(t *testing.T) {
	testCases := []struct {
		ns   string
		want string
	}{
		{ns: "OrderRequest.paymentInfoId", want: "paymentInfoId"},
		{ns: "OrderRequest.menuItems[0].quantity", want: "menuItems.0.quantity"},
		{ns: "OrderRequest.menuItems[12].itemId", want: "menuItems.12.itemId"},
		{ns: "action", want: "action"},
	}

	for _, tc := range testCases {
		t.Run(tc.ns, func(t *testing.T) {
			assert.Equal(t, tc.want, attrFromNamespace(tc.ns))
		})
	}
}

func TestErrorType(t *testing.T) {
	assert.Equal(t, TypeValidationError, errorType(http.StatusBadRequest))
	assert.Equal(t, TypeClientError, errorType(http.StatusNotFound))
	assert.Equal(t, TypeClientError, errorType(http.StatusConflict))
	assert.Equal(t, TypeServerError, errorType(http.StatusInternalServerError))
}

func TestWriteValidationError(t *testing.T) {
	type item struct {
		ItemID string `json:"itemId" validate:"required"`
	}
	type request struct {
		Items  []item `json:"menuItems" validate:"required,dive"`
		Action string `json:"action" validate:"oneof=accept reject"`
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(JSONTagName)
	err := validate.Struct(request{Items: []item{{}}, Action: "cook"})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rr, err))

	var res ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, TypeValidationError, res.Type)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, CodeRequired, res.Errors[0].Code)
	assert.Equal(t, "menuItems.0.itemId", *res.Errors[0].Attr)
	assert.Equal(t, CodeInvalidChoice, res.Errors[1].Code)
	assert.Equal(t, "action", *res.Errors[1].Attr)
}

func TestWriteValidationError_MaxLength(t *testing.T) {
	type request struct {
		PaymentInfoID string `json:"paymentInfoId" validate:"max=3"`
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(JSONTagName)
	err := validate.Struct(request{PaymentInfoID: "pay-1"})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rr, err))

	var res ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, CodeMaxLength, res.Errors[0].Code)
	assert.Equal(t, "Ensure this field has no more than 3 characters.", res.Errors[0].Detail)
	assert.Equal(t, "paymentInfoId", *res.Errors[0].Attr)
}

func TestWriteValidationError_PlainError(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rr, errors.New("bad input")))

	var res ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.Equal(t, CodeInvalid, res.Errors[0].Code)
	assert.Nil(t, res.Errors[0].Attr)
}

func TestWriteMethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/restaurant/orders/1", nil)

	HandlerFunc(WriteMethodNotAllowed)(rr, req)

	var res ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, TypeClientError, res.Type)
	assert.Equal(t, `Method "PUT" not allowed.`, res.Errors[0].Detail)
}
