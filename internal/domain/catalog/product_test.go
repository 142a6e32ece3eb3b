package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with uppercased code", func(t *testing.T) {
		product, err := NewProduct("hc-001", "Harina de centeno", uuid.New())
		require.NoError(t, err)
		assert.Equal(t, "HC-001", product.Code)
		assert.True(t, product.IsActive())
		assert.True(t, product.SalePrice.IsZero())
	})

	t.Run("rejects bad codes", func(t *testing.T) {
		for _, code := range []string{"", "con espacios", "ñandú", "123456789012345678901"} {
			_, err := NewProduct(code, "Producto", uuid.New())
			assert.Error(t, err, "code %q", code)
		}
	})
}

func TestProduct_SetPrices(t *testing.T) {
	product, err := NewProduct("HC-001", "Harina", uuid.New())
	require.NoError(t, err)

	sale := decimal.NewFromFloat(1990.5)
	purchase := decimal.NewFromFloat(1200)
	require.NoError(t, product.SetPrices(sale, purchase))
	assert.True(t, product.SalePrice.Equal(sale))

	assert.Error(t, product.SetPrices(decimal.NewFromInt(-1), purchase))
}

func TestProduct_SetStock(t *testing.T) {
	product, err := NewProduct("HC-001", "Harina", uuid.New())
	require.NoError(t, err)

	require.NoError(t, product.SetStock(25))
	assert.Equal(t, 25, product.Stock)
	assert.Error(t, product.SetStock(-1))
}
