package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	"github.com/jwalitptl/clinic-api/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	reg, err := repository.NewRegistry(context.Background(), store.NewMemoryStore())
	require.NoError(t, err)
	return NewService(reg)
}

func TestAdjustQuantityClampsAtZero(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	item, err := svc.Create(ctx, &model.CreateInventoryItemRequest{
		Name: "Gloves", Quantity: 5, MinQuantity: 10, MaxQuantity: 50, Unit: "box",
	})
	require.NoError(t, err)

	item, err = svc.AdjustQuantity(ctx, item.ID, -8)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)

	item, err = svc.AdjustQuantity(ctx, item.ID, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, item.Quantity)
}

func TestLowStockIncludesMinimumBoundary(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	low, err := svc.Create(ctx, &model.CreateInventoryItemRequest{
		Name: "Gloves", Quantity: 5, MinQuantity: 10, MaxQuantity: 50,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &model.CreateInventoryItemRequest{
		Name: "Masks", Quantity: 30, MinQuantity: 10, MaxQuantity: 50,
	})
	require.NoError(t, err)

	items := svc.LowStock(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "Gloves", items[0].Name)

	// Quantity equal to the minimum still counts as low.
	_, err = svc.AdjustQuantity(ctx, low.ID, 5)
	require.NoError(t, err)
	items = svc.LowStock(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 10, items[0].Quantity)

	// One above the minimum clears the flag.
	_, err = svc.AdjustQuantity(ctx, low.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, svc.LowStock(ctx))
}

func TestUpdatePartialFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	item, err := svc.Create(ctx, &model.CreateInventoryItemRequest{
		Name: "Gloves", Category: "disposables", Quantity: 20, MinQuantity: 10, MaxQuantity: 50, Price: 3,
	})
	require.NoError(t, err)

	newPrice := 4.5
	item, err = svc.Update(ctx, item.ID, &model.UpdateInventoryItemRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 4.5, item.Price)
	assert.Equal(t, "Gloves", item.Name)
	assert.Equal(t, 20, item.Quantity)
}
