package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvstudio/nodewire/pkg/adapters/memory"
	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/ports"
)

func TestMemoryStateStore_Contract(t *testing.T) {
	ports.RunStateStoreContract(t, memory.NewStateStore())
}

func TestMemoryStateStore_Isolation(t *testing.T) {
	store := memory.NewStateStore()
	ctx := context.Background()

	st := domain.SavedState{
		Template: "{name}",
		Inputs:   map[string]string{"name": "original"},
	}
	require.NoError(t, store.Save(ctx, "iso", st))

	// Mutating the caller's map must not leak into the store.
	st.Inputs["name"] = "mutated"

	loaded, err := store.Load(ctx, "iso")
	require.NoError(t, err)
	assert.Equal(t, "original", loaded.Inputs["name"])

	// Nor may mutating a loaded copy change later loads.
	loaded.Inputs["name"] = "mutated again"

	again, err := store.Load(ctx, "iso")
	require.NoError(t, err)
	assert.Equal(t, "original", again.Inputs["name"])
}
