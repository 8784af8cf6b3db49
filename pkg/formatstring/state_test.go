package formatstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvstudio/nodewire/pkg/domain"
)

func TestDecodeSavedState(t *testing.T) {
	raw := map[string]any{
		"template_type": "Jinja2",
		"template":      "{{ name }}",
		"inputs":        map[string]any{"name": "world"},
	}

	st, err := DecodeSavedState(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateJinja, st.TemplateType)
	assert.Equal(t, "{{ name }}", st.Template)
	assert.Equal(t, map[string]string{"name": "world"}, st.Inputs)
}

func TestDecodeSavedStateStringifiesValues(t *testing.T) {
	raw := map[string]any{
		"template": "{count}",
		"inputs":   map[string]any{"count": float64(3)},
	}

	st, err := DecodeSavedState(raw)
	require.NoError(t, err)
	assert.Equal(t, "3", st.Inputs["count"])
}

func TestDecodeSavedStateEmpty(t *testing.T) {
	st, err := DecodeSavedState(map[string]any{})
	require.NoError(t, err)
	assert.True(t, st.IsZero())
}
