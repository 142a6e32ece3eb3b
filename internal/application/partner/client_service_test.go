package partner

import (
	"context"
	"errors"
	"testing"

	"github.com/notaventas/backend/internal/domain/partner"
	"github.com/notaventas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) FindByRUT(ctx context.Context, rut string) (*partner.Client, error) {
	args := m.Called(ctx, rut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) ExistsByRUT(ctx context.Context, rut string) (bool, error) {
	args := m.Called(ctx, rut)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) CountNotes(ctx context.Context, clientID uuid.UUID) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

func newTestClient(t *testing.T, rut string) *partner.Client {
	t.Helper()
	client, err := partner.NewClient("Comercial Los Andes Ltda", rut, "Av. Providencia 1234", "Providencia", uuid.New())
	require.NoError(t, err)
	return client
}

func TestClientService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates client with normalized RUT", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		repo.On("ExistsByRUT", ctx, "12345678-5").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Client")).Return(nil)

		resp, err := service.Create(ctx, CreateClientRequest{
			BusinessName: "Comercial Los Andes Ltda",
			RUT:          "12.345.678-5",
			Address:      "Av. Providencia 1234",
			Commune:      "Providencia",
		})

		require.NoError(t, err)
		assert.Equal(t, "12345678-5", resp.RUT)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate RUT", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		repo.On("ExistsByRUT", ctx, "12345678-5").Return(true, nil)

		_, err := service.Create(ctx, CreateClientRequest{
			BusinessName: "Otro Cliente",
			RUT:          "12345678-5",
			Address:      "Calle 1",
			Commune:      "Santiago",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid RUT without touching repository", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		_, err := service.Create(ctx, CreateClientRequest{
			BusinessName: "Cliente",
			RUT:          "12345678-9",
			Address:      "Calle 1",
			Commune:      "Santiago",
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "ExistsByRUT", mock.Anything, mock.Anything)
	})

	t.Run("allows empty RUT", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*partner.Client")).Return(nil)

		resp, err := service.Create(ctx, CreateClientRequest{
			BusinessName: "Cliente Sin RUT",
			Address:      "Calle 1",
			Commune:      "Santiago",
		})

		require.NoError(t, err)
		assert.Empty(t, resp.RUT)
		repo.AssertNotCalled(t, "ExistsByRUT", mock.Anything, mock.Anything)
	})
}

func TestClientService_ResolveOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns existing client for any RUT spelling", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		existing := newTestClient(t, "12345678-5")
		repo.On("FindByRUT", ctx, "12345678-5").Return(existing, nil)

		resp, created, err := service.ResolveOrCreate(ctx, ResolveOrCreateInput{
			RUT:         "12.345.678-5",
			AllowCreate: true,
		})

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing.ID, resp.ID)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("creates client when absent and allowed", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		repo.On("FindByRUT", ctx, "20347878-K").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Client")).Return(nil)

		resp, created, err := service.ResolveOrCreate(ctx, ResolveOrCreateInput{
			RUT:          "20.347.878-k",
			BusinessName: "Cliente Nuevo SpA",
			Address:      "Camino Real 55",
			Commune:      "Maipú",
			AllowCreate:  true,
		})

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "20347878-K", resp.RUT)
		repo.AssertExpectations(t)
	})

	t.Run("fails validation when creation is not allowed", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		repo.On("FindByRUT", ctx, "12345678-5").Return(nil, shared.ErrNotFound)

		_, _, err := service.ResolveOrCreate(ctx, ResolveOrCreateInput{
			RUT:         "12345678-5",
			AllowCreate: false,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CLIENT", domainErr.Code)
		assert.Contains(t, domainErr.Message, "12345678-5")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid RUT", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		_, _, err := service.ResolveOrCreate(ctx, ResolveOrCreateInput{
			RUT:         "no-es-rut",
			AllowCreate: true,
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "FindByRUT", mock.Anything, mock.Anything)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		repo.On("FindByRUT", ctx, "12345678-5").Return(nil, errors.New("connection refused"))

		_, _, err := service.ResolveOrCreate(ctx, ResolveOrCreateInput{
			RUT:         "12345678-5",
			AllowCreate: true,
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestClientService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes unreferenced client", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		client := newTestClient(t, "")
		repo.On("FindByID", ctx, client.ID).Return(client, nil)
		repo.On("CountNotes", ctx, client.ID).Return(int64(0), nil)
		repo.On("Delete", ctx, client.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, client.ID))
		repo.AssertExpectations(t)
	})

	t.Run("blocks deletion while notes reference the client", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		client := newTestClient(t, "")
		repo.On("FindByID", ctx, client.ID).Return(client, nil)
		repo.On("CountNotes", ctx, client.ID).Return(int64(3), nil)

		err := service.Delete(ctx, client.ID)

		require.ErrorIs(t, err, shared.ErrReferencedByNotes)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestClientService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces RUT after uniqueness check", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		client := newTestClient(t, "12345678-5")
		newRUT := "20347878-K"

		repo.On("FindByID", ctx, client.ID).Return(client, nil)
		repo.On("ExistsByRUT", ctx, "20347878-K").Return(false, nil)
		repo.On("Save", ctx, client).Return(nil)

		resp, err := service.Update(ctx, client.ID, UpdateClientRequest{RUT: &newRUT})

		require.NoError(t, err)
		assert.Equal(t, "20347878-K", resp.RUT)
		repo.AssertExpectations(t)
	})

	t.Run("skips uniqueness check when RUT unchanged", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo)

		client := newTestClient(t, "12345678-5")
		sameRUT := "12.345.678-5"

		repo.On("FindByID", ctx, client.ID).Return(client, nil)
		repo.On("Save", ctx, client).Return(nil)

		resp, err := service.Update(ctx, client.ID, UpdateClientRequest{RUT: &sameRUT})

		require.NoError(t, err)
		assert.Equal(t, "12345678-5", resp.RUT)
		repo.AssertNotCalled(t, "ExistsByRUT", mock.Anything, mock.Anything)
	})
}
