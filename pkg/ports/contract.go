package ports

import (
	"context"
	"testing"
	"time"

	"github.com/NishaManivannan/Bakery-chatbot/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSessionStoreContract runs a suite of tests to verify that a SessionStore
// implementation adheres to the defined interface contract.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		state := domain.NewState(time.Now().UTC().Truncate(time.Second))
		state.Stage = domain.StageCategory
		state.Name = "Alice"
		state.Phone = "9142551200"
		custom := "Happy Birthday!"
		state.Customization = &custom

		err := store.Save(ctx, sessionID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, domain.StageCategory, loaded.Stage)
		assert.Equal(t, "Alice", loaded.Name)
		assert.Equal(t, "9142551200", loaded.Phone)
		require.NotNil(t, loaded.Customization)
		assert.Equal(t, "Happy Birthday!", *loaded.Customization)
		assert.True(t, state.LastActiveAt.Equal(loaded.LastActiveAt))
	})

	t.Run("Loaded state is isolated", func(t *testing.T) {
		state := domain.NewState(time.Now())
		state.Name = "Bob"
		require.NoError(t, store.Save(ctx, sessionID, state))

		first, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		first.Name = "Mallory"

		second, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "Bob", second.Name, "mutating a loaded state must not leak into the store")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sessionID, domain.NewState(time.Now())))

		err := store.Clear(ctx, sessionID)
		require.NoError(t, err, "Clear should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Clear should return ErrSessionNotFound")
	})

	t.Run("Clear Non-Existent is a no-op", func(t *testing.T) {
		err := store.Clear(ctx, "never-saved-"+sessionID)
		assert.NoError(t, err)
	})
}
