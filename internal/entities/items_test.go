package entities_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-order-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestValidateItems(t *testing.T) {
	testCases := []struct {
		name    string
		items   []entities.ItemInput
		wantErr error
	}{
		{name: "ok", items: []entities.ItemInput{{ItemID: "a", Quantity: 1}}},
		{name: "empty", items: nil, wantErr: entities.ErrNoMenuItems},
		{name: "zero quantity", items: []entities.ItemInput{{ItemID: "a", Quantity: 0}}, wantErr: entities.ErrInvalidQuantity},
		{
			name:    "negative quantity after valid one",
			items:   []entities.ItemInput{{ItemID: "a", Quantity: 2}, {ItemID: "b", Quantity: -1}},
			wantErr: entities.ErrInvalidQuantity,
		},
		{name: "max quantity", items: []entities.ItemInput{{ItemID: "a", Quantity: entities.MaxQuantity}}},
		{
			name:    "quantity above int32",
			items:   []entities.ItemInput{{ItemID: "a", Quantity: entities.MaxQuantity + 1}},
			wantErr: entities.ErrQuantityTooLarge,
		},
		{
			name:    "repeated item overflows after merge",
			items:   []entities.ItemInput{{ItemID: "a", Quantity: entities.MaxQuantity}, {ItemID: "a", Quantity: 1}},
			wantErr: entities.ErrQuantityTooLarge,
		},
		{
			name:    "item id too long",
			items:   []entities.ItemInput{{ItemID: strings.Repeat("i", 256), Quantity: 1}},
			wantErr: entities.ErrItemIDTooLong,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := entities.ValidateItems(tc.items)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateOrderInput(t *testing.T) {
	items := []entities.ItemInput{{ItemID: "a", Quantity: 1}}
	edge := strings.Repeat("x", entities.MaxIDLength)
	long := edge + "x"

	assert.NoError(t, entities.ValidateOrderInput(edge, items, edge))
	assert.ErrorIs(t, entities.ValidateOrderInput(long, items, "pay"), entities.ErrCustomerIDTooLong)
	assert.ErrorIs(t, entities.ValidateOrderInput("c", items, long), entities.ErrPaymentInfoIDTooLong)
	assert.ErrorIs(t, entities.ValidateOrderInput("c", nil, "pay"), entities.ErrNoMenuItems)
}

func TestMergeItems(t *testing.T) {
	got := entities.MergeItems([]entities.ItemInput{
		{ItemID: "a", Quantity: 2},
		{ItemID: "b", Quantity: 1},
		{ItemID: "a", Quantity: 3},
	})

	assert.Equal(t, []entities.ItemInput{
		{ItemID: "a", Quantity: 5},
		{ItemID: "b", Quantity: 1},
	}, got)
}

func TestOrderFilter_IsImmutable(t *testing.T) {
	base := entities.OrderFilter{}.Actionable()
	stale := base.Stale(time.Now())
	_ = base.Rejected()

	assert.Equal(t, []entities.OrderScope{entities.ScopeActionable}, base.Scopes)
	assert.Equal(t, []entities.OrderScope{entities.ScopeActionable, entities.ScopeStale}, stale.Scopes)
	assert.False(t, base.SkipRelated)
	assert.True(t, base.Unoptimized().SkipRelated)
}
