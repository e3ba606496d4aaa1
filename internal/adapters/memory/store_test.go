package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NishaManivannan/Bakery-chatbot/internal/adapters/memory"
	"github.com/NishaManivannan/Bakery-chatbot/pkg/domain"
	"github.com/NishaManivannan/Bakery-chatbot/pkg/ports"
)

func TestSessionStore_Contract(t *testing.T) {
	ports.RunSessionStoreContract(t, memory.NewSessionStore())
}

func TestOrderStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewOrderStore()

	order := domain.Order{Name: "Alice", Phone: "9142551200", Category: "Cake", Flavor: "Vanilla", Topping: "Nuts", Cost: 350}
	require.NoError(t, store.Insert(ctx, order))

	exists, err := store.ExistsByNamePhone(ctx, "Alice", "9142551200")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.ExistsByNamePhone(ctx, "Alice", "0000000000")
	require.NoError(t, err)
	assert.False(t, exists, "phone must match exactly")

	require.NoError(t, store.DeleteByNamePhone(ctx, "Alice", "9142551200"))
	exists, err = store.ExistsByNamePhone(ctx, "Alice", "9142551200")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again is a no-op.
	require.NoError(t, store.DeleteByNamePhone(ctx, "Alice", "9142551200"))
	assert.Equal(t, 0, store.Len())
}

func TestOrderStore_DeleteRemovesAllMatches(t *testing.T) {
	ctx := context.Background()
	store := memory.NewOrderStore()

	require.NoError(t, store.Insert(ctx, domain.Order{Name: "Bob", Phone: "1112223333", Cost: 100}))
	require.NoError(t, store.Insert(ctx, domain.Order{Name: "Bob", Phone: "1112223333", Cost: 200}))
	require.NoError(t, store.Insert(ctx, domain.Order{Name: "Carol", Phone: "1112223333", Cost: 300}))

	require.NoError(t, store.DeleteByNamePhone(ctx, "Bob", "1112223333"))
	assert.Equal(t, 1, store.Len())

	exists, err := store.ExistsByNamePhone(ctx, "Carol", "1112223333")
	require.NoError(t, err)
	assert.True(t, exists)
}
