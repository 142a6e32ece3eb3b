package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	creator := uuid.New()

	t.Run("creates client with normalized RUT", func(t *testing.T) {
		client, err := NewClient("Comercial Andes Ltda", "12.345.678-5", "Av. Matta 1234", "Santiago", creator)
		require.NoError(t, err)

		assert.Equal(t, "Comercial Andes Ltda", client.BusinessName)
		assert.Equal(t, "12345678-5", client.RUT)
		assert.True(t, client.HasRUT())
		require.NotNil(t, client.CreatedBy)
		assert.Equal(t, creator, *client.CreatedBy)

		events := client.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventClientCreated, events[0].EventType())
	})

	t.Run("allows empty RUT", func(t *testing.T) {
		client, err := NewClient("Cliente Sin RUT", "", "Calle Falsa 123", "Providencia", creator)
		require.NoError(t, err)
		assert.False(t, client.HasRUT())
	})

	t.Run("rejects invalid RUT", func(t *testing.T) {
		_, err := NewClient("Cliente Malo", "12345678-9", "Calle 1", "Santiago", creator)
		assert.Error(t, err)
	})

	t.Run("rejects empty business name", func(t *testing.T) {
		_, err := NewClient("  ", "", "Calle 1", "Santiago", creator)
		assert.Error(t, err)
	})

	t.Run("rejects missing commune", func(t *testing.T) {
		_, err := NewClient("Cliente", "", "Calle 1", "", creator)
		assert.Error(t, err)
	})
}

func TestClient_Update(t *testing.T) {
	creator := uuid.New()
	client, err := NewClient("Original", "", "Calle 1", "Santiago", creator)
	require.NoError(t, err)
	client.ClearDomainEvents()

	modifier := uuid.New()
	require.NoError(t, client.Update("Actualizado", "Calle 2", "Ñuñoa", modifier))

	assert.Equal(t, "Actualizado", client.BusinessName)
	assert.Equal(t, "Calle 2", client.Address)
	assert.Equal(t, 2, client.Version)
	require.NotNil(t, client.UpdatedBy)
	assert.Equal(t, modifier, *client.UpdatedBy)
	assert.Len(t, client.GetDomainEvents(), 1)
}

func TestClient_SetContact(t *testing.T) {
	client, err := NewClient("Cliente", "", "Calle 1", "Santiago", uuid.New())
	require.NoError(t, err)

	t.Run("valid contact", func(t *testing.T) {
		require.NoError(t, client.SetContact("Juana Pérez", "juana@example.cl", "+56 9 1234 5678"))
		assert.Equal(t, "Juana Pérez", client.ContactName)
	})

	t.Run("invalid email", func(t *testing.T) {
		assert.Error(t, client.SetContact("Juana", "no-es-correo", ""))
	})

	t.Run("invalid phone", func(t *testing.T) {
		assert.Error(t, client.SetContact("Juana", "", "telefono"))
	})
}

func TestSupplier_StatusTransitions(t *testing.T) {
	supplier, err := NewSupplier("Insumos del Sur SpA", "12345678-5", "Ruta 5 km 20", "San Bernardo", uuid.New())
	require.NoError(t, err)
	assert.True(t, supplier.IsActive())

	assert.Error(t, supplier.Activate(), "double activation rejected")
	require.NoError(t, supplier.Deactivate())
	assert.False(t, supplier.IsActive())
	require.NoError(t, supplier.Activate())
	assert.True(t, supplier.IsActive())
}
