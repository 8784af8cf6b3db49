package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvstudio/nodewire/pkg/domain"
)

// RunConfigStoreContract verifies that a ConfigStore implementation adheres
// to the interface contract. Adapter tests call it with a ready store.
func RunConfigStoreContract(t *testing.T, store ConfigStore) {
	ctx := context.Background()
	nodeID := "contract-node-" + time.Now().Format("20060102150405")

	cfg := domain.NodeConfig{
		Inputs: map[string]domain.InputSpec{
			domain.WidgetTemplate: {Type: domain.TypeString, Multiline: true},
			"name":                {Type: domain.TypeString},
		},
		Outputs: []domain.OutputSpec{
			{Name: "name", Type: domain.TypeString},
			{Name: "formatted_string", Type: domain.TypeString},
		},
	}

	t.Run("Put and Get", func(t *testing.T) {
		err := store.Put(ctx, nodeID, cfg)
		require.NoError(t, err, "Put should not return error")

		loaded, err := store.Get(ctx, nodeID)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, cfg.Outputs, loaded.Outputs)
		assert.Equal(t, cfg.Inputs["name"], loaded.Inputs["name"])
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "non-existent-"+nodeID)
		assert.ErrorIs(t, err, domain.ErrConfigNotFound)
	})

	t.Run("Put Replaces", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, nodeID, cfg))

		replacement := domain.NodeConfig{
			Inputs:  map[string]domain.InputSpec{"x": {Type: domain.TypeString}},
			Outputs: []domain.OutputSpec{{Name: "x", Type: domain.TypeString}},
		}
		require.NoError(t, store.Put(ctx, nodeID, replacement))

		loaded, err := store.Get(ctx, nodeID)
		require.NoError(t, err)
		assert.Equal(t, replacement.Outputs, loaded.Outputs)
		assert.NotContains(t, loaded.Inputs, "name")
	})
}

// RunStateStoreContract verifies that a StateStore implementation adheres to
// the interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	path := "contract/state-" + time.Now().Format("20060102150405") + ".json"

	st := domain.SavedState{
		TemplateType: domain.TemplateSimple,
		Template:     "Hello {name}",
		Inputs:       map[string]string{"name": "Alice"},
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, path, st)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, path)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, st.TemplateType, loaded.TemplateType)
		assert.Equal(t, st.Template, loaded.Template)
		assert.Equal(t, "Alice", loaded.Inputs["name"])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+path)
		assert.ErrorIs(t, err, domain.ErrStateNotFound)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, path, st))

		replacement := st
		replacement.Template = "{x}"
		replacement.Inputs = map[string]string{"x": "1"}
		require.NoError(t, store.Save(ctx, path, replacement))

		loaded, err := store.Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "{x}", loaded.Template)
		assert.NotContains(t, loaded.Inputs, "name")
	})
}
