//go:build integration

package repo

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-order-service/internal/config"
	"github.com/SergeyBogomolovv/food-order-service/internal/entities"
	"github.com/SergeyBogomolovv/food-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/food-order-service/pkg/trm"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:17-alpine",
		tcpostgres.WithDatabase("orders_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Connect(dsn, config.Postgres{MaxOpenConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.Migrate(ctx, db))
	// повторный прогон не должен падать
	require.NoError(t, postgres.Migrate(ctx, db))
	return db
}

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newOrder(customerID string, createdAt time.Time) entities.Order {
	return entities.Order{
		UID:        uuid.NewString(),
		CustomerID: customerID,
		Status:     entities.StatusPlaced,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func TestPostgresRepo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := setupPostgres(t)
	r := NewPostgresRepo(db)
	ctx := context.Background()

	t.Run("create and get with items and payments", func(t *testing.T) {
		o, err := r.CreateOrder(ctx, newOrder("c-1", base))
		require.NoError(t, err)
		require.NotZero(t, o.ID)

		require.NoError(t, r.UpsertItems(ctx, o.ID, []entities.ItemInput{{ItemID: "pizza", Quantity: 2}, {ItemID: "cola", Quantity: 1}}, base))
		require.NoError(t, r.UpsertItems(ctx, o.ID, []entities.ItemInput{{ItemID: "pizza", Quantity: 3}}, base.Add(time.Minute)))

		_, err = r.CreatePayment(ctx, entities.Payment{OrderID: o.ID, PaymentInfoID: "pi_1", CreatedAt: base, UpdatedAt: base})
		require.NoError(t, err)

		got, err := r.GetOrder(ctx, entities.OrderFilter{}.WithUIDs(o.UID))
		require.NoError(t, err)
		assert.Equal(t, "c-1", got.CustomerID)
		assert.True(t, base.Equal(got.CreatedAt))

		quantities := map[string]int{}
		for _, it := range got.Items {
			quantities[it.ItemID] = it.Quantity
			assert.Equal(t, o.UID, it.OrderUID)
		}
		assert.Equal(t, map[string]int{"pizza": 5, "cola": 1}, quantities)
		require.Len(t, got.Payments, 1)
		assert.Equal(t, "pi_1", got.Payments[0].PaymentInfoID)
	})

	t.Run("duplicate payment", func(t *testing.T) {
		o, err := r.CreateOrder(ctx, newOrder("c-2", base))
		require.NoError(t, err)

		_, err = r.CreatePayment(ctx, entities.Payment{OrderID: o.ID, PaymentInfoID: "pi_dup", CreatedAt: base, UpdatedAt: base})
		require.NoError(t, err)
		_, err = r.CreatePayment(ctx, entities.Payment{OrderID: o.ID, PaymentInfoID: "pi_dup", CreatedAt: base, UpdatedAt: base})
		assert.ErrorIs(t, err, entities.ErrDuplicate)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := r.GetOrder(ctx, entities.OrderFilter{}.WithUIDs(uuid.NewString()))
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("guarded update", func(t *testing.T) {
		o, err := r.CreateOrder(ctx, newOrder("c-3", base))
		require.NoError(t, err)

		at := base.Add(time.Minute)
		accepted := entities.StatusAccepted
		ok, err := r.UpdateOrder(ctx, o.UID, entities.OrderUpdate{Status: &accepted, AcceptedAt: &at}, entities.AcceptedSourceStates, at)
		require.NoError(t, err)
		assert.True(t, ok)

		rejected := entities.StatusRejected
		ok, err = r.UpdateOrder(ctx, o.UID, entities.OrderUpdate{Status: &rejected, RejectedAt: &at}, entities.RejectedSourceStates, at)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := r.GetOrder(ctx, entities.OrderFilter{}.WithUIDs(o.UID).Unoptimized())
		require.NoError(t, err)
		assert.Equal(t, entities.StatusAccepted, got.Status)
		require.NotNil(t, got.AcceptedAt)
		assert.Nil(t, got.RejectedAt)
	})

	t.Run("locked select inside transaction", func(t *testing.T) {
		o, err := r.CreateOrder(ctx, newOrder("c-4", base))
		require.NoError(t, err)

		err = trm.NewManager(db).Do(ctx, func(ctx context.Context) error {
			got, err := r.GetOrder(ctx, entities.OrderFilter{}.WithUIDs(o.UID).Locked().Unoptimized())
			if err != nil {
				return err
			}
			return r.UpsertItems(ctx, got.ID, []entities.ItemInput{{ItemID: "soup", Quantity: 1}}, base)
		})
		require.NoError(t, err)

		items, err := r.ListItems(ctx, entities.ChildFilter{}.ForOrders(o.ID))
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "soup", items[0].ItemID)
	})
}

func TestPostgresRepo_StaleAndRefunds(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := setupPostgres(t)
	r := NewPostgresRepo(db)
	ctx := context.Background()

	old, err := r.CreateOrder(ctx, newOrder("c-1", base.Add(-10*time.Minute)))
	require.NoError(t, err)
	fresh, err := r.CreateOrder(ctx, newOrder("c-1", base.Add(-time.Minute)))
	require.NoError(t, err)

	for i, o := range []entities.Order{old, fresh} {
		_, err := r.CreatePayment(ctx, entities.Payment{
			OrderID:       o.ID,
			PaymentInfoID: []string{"pi_old", "pi_fresh"}[i],
			CreatedAt:     o.CreatedAt,
			UpdatedAt:     o.CreatedAt,
		})
		require.NoError(t, err)
	}

	stale, err := r.ListOrders(ctx, entities.OrderFilter{}.Stale(base.Add(-5*time.Minute)).Unoptimized())
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, old.UID, stale[0].UID)

	rejected := entities.StatusRejected
	ok, err := r.UpdateOrder(ctx, old.UID, entities.OrderUpdate{Status: &rejected, RejectedAt: &base}, entities.RejectedSourceStates, base)
	require.NoError(t, err)
	require.True(t, ok)

	count, err := r.CountPayments(ctx, entities.ChildFilter{}.Rejected())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	refunds, err := r.ListPayments(ctx, entities.ChildFilter{}.Rejected().Page(10, 0))
	require.NoError(t, err)
	require.Len(t, refunds, 1)
	assert.Equal(t, "pi_old", refunds[0].PaymentInfoID)
	assert.Equal(t, old.UID, refunds[0].OrderUID)

	placed, err := r.CountOrders(ctx, entities.OrderFilter{}.WithStatus("PLACED"))
	require.NoError(t, err)
	assert.Equal(t, 1, placed)

	all, err := r.ListOrders(ctx, entities.OrderFilter{}.Page(10, 0))
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, fresh.UID, all[0].UID, "newest first")
}
