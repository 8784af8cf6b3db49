package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dvstudio/nodewire/pkg/domain"
)

func dyn(name string) domain.Socket {
	return domain.Socket{Name: name, Role: domain.RoleDynamic, Type: domain.TypeAny}
}

func seed() domain.Socket {
	return domain.Socket{Name: domain.SocketSeed, Role: domain.RoleSeed, Type: domain.TypeInt}
}

func sel() domain.Socket {
	return domain.Socket{Name: domain.SocketSelect, Role: domain.RoleSelect, Type: domain.TypeInt}
}

func selMode() domain.Socket {
	return domain.Socket{Name: domain.SocketSelMode, Role: domain.RoleSelMode, Type: domain.TypeString}
}

func TestCounts(t *testing.T) {
	inputs := []domain.Socket{sel(), selMode(), dyn("input1"), dyn("input2"), seed()}

	assert.Equal(t, 3, ControlCount(inputs))
	assert.Equal(t, 2, DynamicCount(inputs))
	assert.Equal(t, 4, NonSeedCount(inputs))
	assert.True(t, HasSelect(inputs))
	assert.Equal(t, 4, SeedIndex(inputs))
}

func TestCountsWithoutControls(t *testing.T) {
	inputs := []domain.Socket{dyn("value1"), dyn("value2")}

	assert.Equal(t, 0, ControlCount(inputs))
	assert.Equal(t, 2, DynamicCount(inputs))
	assert.Equal(t, 2, NonSeedCount(inputs))
	assert.False(t, HasSelect(inputs))
	assert.Equal(t, -1, SeedIndex(inputs))
}

func TestControlsRecognizedByNameFallback(t *testing.T) {
	// Sockets restored from a serialized graph may carry no role.
	inputs := []domain.Socket{
		{Name: "input1", Type: domain.TypeAny},
		{Name: domain.SocketSelect, Type: domain.TypeInt},
		{Name: domain.SocketSeed, Type: domain.TypeInt},
	}

	assert.Equal(t, 2, ControlCount(inputs))
	assert.True(t, HasSelect(inputs))
	assert.Equal(t, 2, SeedIndex(inputs))
}

func TestLastDynamicIndex(t *testing.T) {
	t.Run("skips trailing controls", func(t *testing.T) {
		inputs := []domain.Socket{dyn("input1"), dyn("input2"), seed()}
		assert.Equal(t, 1, LastDynamicIndex(inputs))
	})

	t.Run("last socket dynamic", func(t *testing.T) {
		inputs := []domain.Socket{sel(), dyn("input1")}
		assert.Equal(t, 1, LastDynamicIndex(inputs))
	})

	t.Run("no dynamic sockets", func(t *testing.T) {
		inputs := []domain.Socket{sel(), selMode(), seed()}
		assert.Equal(t, -1, LastDynamicIndex(inputs))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, -1, LastDynamicIndex(nil))
	})
}
