package sales

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNote(t *testing.T) {
	clientID := uuid.New()
	creator := uuid.New()
	dispatch := time.Now().AddDate(0, 0, 3)

	t.Run("creates note with defaults", func(t *testing.T) {
		note, err := NewNote(1042, clientID, dispatch, creator)
		require.NoError(t, err)

		assert.Equal(t, 1042, note.Number)
		assert.Equal(t, RequestStatusNotRequested, note.RequestStatus)
		assert.False(t, note.IsRequested())
		require.Len(t, note.GetDomainEvents(), 1)
		assert.Equal(t, EventNoteCreated, note.GetDomainEvents()[0].EventType())
	})

	t.Run("rejects non-positive number", func(t *testing.T) {
		_, err := NewNote(0, clientID, dispatch, creator)
		assert.Error(t, err)
	})

	t.Run("rejects nil client", func(t *testing.T) {
		_, err := NewNote(1, uuid.Nil, dispatch, creator)
		assert.Error(t, err)
	})

	t.Run("rejects zero dispatch date", func(t *testing.T) {
		_, err := NewNote(1, clientID, time.Time{}, creator)
		assert.Error(t, err)
	})
}

func TestNote_SetDelivery(t *testing.T) {
	note, err := NewNote(7, uuid.New(), time.Now(), uuid.New())
	require.NoError(t, err)

	require.NoError(t, note.SetDelivery(DeliveryModeDispatch, "09:00", "13:00"))
	assert.Equal(t, DeliveryModeDispatch, note.DeliveryMode)

	assert.Error(t, note.SetDelivery("Courier", "", ""))
}

func TestNote_SetRequestStatus(t *testing.T) {
	note, err := NewNote(7, uuid.New(), time.Now(), uuid.New())
	require.NoError(t, err)

	modifier := uuid.New()
	require.NoError(t, note.SetRequestStatus(RequestStatusRequested, modifier))

	assert.True(t, note.IsRequested())
	require.NotNil(t, note.UpdatedBy)
	assert.Equal(t, modifier, *note.UpdatedBy)

	assert.Error(t, note.SetRequestStatus("Pendiente", modifier))
}
