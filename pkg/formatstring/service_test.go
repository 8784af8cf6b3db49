package formatstring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvstudio/nodewire/pkg/adapters/memory"
	"github.com/dvstudio/nodewire/pkg/domain"
)

func newTestService() *Service {
	return NewService(memory.NewConfigStore(), memory.NewStateStore())
}

func TestServiceUpdateNodeConfig(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cfg, err := svc.UpdateNodeConfig(ctx, domain.UpdateRequest{
		NodeID:       "42",
		TemplateType: domain.TemplateSimple,
		Template:     "Hello {name}",
	})
	require.NoError(t, err)
	assert.Contains(t, cfg.Inputs, "name")

	stored, err := svc.NodeConfig(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, cfg, stored)
}

func TestServiceUpdateNodeConfigRequiresNodeID(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateNodeConfig(context.Background(), domain.UpdateRequest{Template: "{x}"})
	assert.Error(t, err)
}

func TestServiceNodeConfigUnknownNode(t *testing.T) {
	svc := newTestService()

	_, err := svc.NodeConfig(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestServiceLoadState(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	want := domain.SavedState{
		TemplateType: domain.TemplateJinja,
		Template:     "{{ name }}",
		Inputs:       map[string]string{"name": "world"},
	}
	require.NoError(t, svc.SaveState(ctx, "prompts/greeting", want))

	got, err := svc.LoadState(ctx, "prompts/greeting")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestServiceLoadStateMissingPath(t *testing.T) {
	svc := newTestService()

	_, err := svc.LoadState(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingSavePath)
}

func TestServiceLoadStateNothingSaved(t *testing.T) {
	svc := newTestService()

	st, err := svc.LoadState(context.Background(), "prompts/unknown")
	require.NoError(t, err)
	assert.True(t, st.IsZero())
}

func TestServiceSaveStateMissingPath(t *testing.T) {
	svc := newTestService()

	err := svc.SaveState(context.Background(), "", domain.SavedState{Template: "{x}"})
	assert.ErrorIs(t, err, domain.ErrMissingSavePath)
}
