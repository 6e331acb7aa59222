package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-time.Hour)

	placed := entities.Order{UID: "o-1", Status: entities.StatusPlaced}
	accepted := entities.Order{UID: "o-2", Status: entities.StatusAccepted, AcceptedAt: &earlier}
	rejected := entities.Order{UID: "o-3", Status: entities.StatusRejected, RejectedAt: &earlier}

	testCases := []struct {
		name       string
		order      entities.Order
		action     entities.Action
		wantStatus entities.Status
		wantErr    error
	}{
		{name: "placed -> accepted", order: placed, action: entities.ActionAccept, wantStatus: entities.StatusAccepted},
		{name: "placed -> rejected", order: placed, action: entities.ActionReject, wantStatus: entities.StatusRejected},
		{name: "accepted -> rejected", order: accepted, action: entities.ActionReject, wantErr: entities.ErrInvalidTransition},
		{name: "rejected -> accepted", order: rejected, action: entities.ActionAccept, wantErr: entities.ErrInvalidTransition},
		{name: "accepted re-entry", order: accepted, action: entities.ActionAccept, wantErr: entities.ErrInvalidTransition},
		{name: "rejected re-entry", order: rejected, action: entities.ActionReject, wantErr: entities.ErrInvalidTransition},
		{name: "unknown action", order: placed, action: entities.Action("cancel"), wantErr: entities.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			upd, err := entities.Transition(tc.order, tc.action, now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.True(t, upd.Empty())
				return
			}
			require.NoError(t, err)
			require.NotNil(t, upd.Status)
			assert.Equal(t, tc.wantStatus, *upd.Status)

			o := tc.order
			changed := o.Apply(upd, now)
			assert.True(t, changed)
			assert.True(t, o.IsFinalised())
			assert.Equal(t, now, o.UpdatedAt)

			switch tc.wantStatus {
			case entities.StatusAccepted:
				require.NotNil(t, o.AcceptedAt)
				assert.Equal(t, now, *o.AcceptedAt)
				assert.Nil(t, o.RejectedAt)
			case entities.StatusRejected:
				require.NotNil(t, o.RejectedAt)
				assert.Equal(t, now, *o.RejectedAt)
				assert.Nil(t, o.AcceptedAt)
			}
		})
	}
}

func TestTransition_SecondActionIsRefused(t *testing.T) {
	now := time.Now()
	o := entities.Order{Status: entities.StatusPlaced}

	upd, err := entities.Transition(o, entities.ActionAccept, now)
	require.NoError(t, err)
	o.Apply(upd, now)

	_, err = entities.Transition(o, entities.ActionReject, now.Add(time.Second))
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	assert.Equal(t, entities.StatusAccepted, o.Status)
	assert.Nil(t, o.RejectedAt)
}

func TestOrder_Guards(t *testing.T) {
	at := time.Now()

	assert.True(t, entities.Order{Status: entities.StatusPlaced}.CanMarkAsAccepted())
	assert.True(t, entities.Order{Status: entities.StatusPlaced}.CanMarkAsRejected())
	assert.False(t, entities.Order{Status: entities.StatusAccepted, AcceptedAt: &at}.CanMarkAsRejected())
	assert.False(t, entities.Order{Status: entities.StatusRejected, RejectedAt: &at}.CanMarkAsAccepted())

	assert.False(t, entities.Order{Status: entities.StatusPlaced}.IsFinalised())
	assert.True(t, entities.Order{Status: entities.StatusAccepted, AcceptedAt: &at}.IsFinalised())
}

func TestOrder_Apply(t *testing.T) {
	now := time.Now()
	customer := "c-1"

	o := entities.Order{CustomerID: customer, Status: entities.StatusPlaced}
	changed := o.Apply(entities.OrderUpdate{CustomerID: &customer}, now)
	assert.False(t, changed, "same value must not count as a change")
	assert.Equal(t, now, o.UpdatedAt, "updated_at is stamped regardless")

	other := "c-2"
	changed = o.Apply(entities.OrderUpdate{CustomerID: &other}, now)
	assert.True(t, changed)
	assert.Equal(t, "c-2", o.CustomerID)
}

func TestParseStatus(t *testing.T) {
	s, ok := entities.ParseStatus(" REJECTED ")
	assert.True(t, ok)
	assert.Equal(t, entities.StatusRejected, s)

	_, ok = entities.ParseStatus("cancelled")
	assert.False(t, ok)
}
