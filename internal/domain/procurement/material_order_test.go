package procurement

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaterialOrder(t *testing.T) {
	supplierID := uuid.New()
	creator := uuid.New()

	order, err := NewMaterialOrder("OC-2024-001", supplierID, time.Now(), creator)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Empty(t, order.Items)

	_, err = NewMaterialOrder("", supplierID, time.Now(), creator)
	assert.Error(t, err)

	_, err = NewMaterialOrder("OC-1", uuid.Nil, time.Now(), creator)
	assert.Error(t, err)
}

func TestMaterialOrder_AddItem(t *testing.T) {
	order, err := NewMaterialOrder("OC-2024-002", uuid.New(), time.Now(), uuid.New())
	require.NoError(t, err)

	productID := uuid.New()
	err = order.AddItem(productID, decimal.NewFromInt(10), decimal.NewFromInt(500))
	require.NoError(t, err)
	require.Len(t, order.Items, 1)

	// same product accumulates quantity
	err = order.AddItem(productID, decimal.NewFromInt(5), decimal.NewFromInt(500))
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].Quantity.Equal(decimal.NewFromInt(15)))

	err = order.AddItem(uuid.New(), decimal.Zero, decimal.NewFromInt(100))
	assert.Error(t, err)

	assert.True(t, order.Total().Equal(decimal.NewFromInt(7500)))
}

func TestMaterialOrder_Lifecycle(t *testing.T) {
	order, err := NewMaterialOrder("OC-2024-003", uuid.New(), time.Now(), uuid.New())
	require.NoError(t, err)

	// cannot send an empty order
	assert.Error(t, order.Send())

	require.NoError(t, order.AddItem(uuid.New(), decimal.NewFromInt(1), decimal.NewFromInt(100)))
	require.NoError(t, order.Send())
	assert.Equal(t, OrderStatusSent, order.Status)

	// sent orders are frozen
	assert.Error(t, order.AddItem(uuid.New(), decimal.NewFromInt(1), decimal.NewFromInt(100)))

	require.NoError(t, order.MarkReceived())
	assert.Equal(t, OrderStatusReceived, order.Status)
	assert.Error(t, order.Cancel())
}
