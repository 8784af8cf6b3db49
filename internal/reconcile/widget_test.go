package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvstudio/nodewire/pkg/adapters/memory"
	"github.com/dvstudio/nodewire/pkg/domain"
)

func TestSyncSelectorBounds(t *testing.T) {
	t.Run("max excludes the select socket", func(t *testing.T) {
		host := memory.NewHost([]domain.Socket{
			sel(), dyn("input1"), dyn("input2"), dyn("input3"),
		}, nil)
		w := host.AddWidget(domain.Widget{Name: domain.SocketSelect, Value: 5})

		SyncSelectorBounds(host, domain.SocketSelect)

		assert.Equal(t, 2, w.Max)
		assert.Equal(t, 2, w.Int())
	})

	t.Run("zero value promoted to one", func(t *testing.T) {
		host := memory.NewHost([]domain.Socket{dyn("input1"), dyn("input2")}, nil)
		w := host.AddWidget(domain.Widget{Name: "count", Value: 0})

		SyncSelectorBounds(host, "count")

		assert.Equal(t, 2, w.Max)
		assert.Equal(t, 1, w.Int())
	})

	t.Run("max zero leaves value untouched", func(t *testing.T) {
		host := memory.NewHost([]domain.Socket{sel(), dyn("input1")}, nil)
		w := host.AddWidget(domain.Widget{Name: domain.SocketSelect, Value: 7})

		SyncSelectorBounds(host, domain.SocketSelect)

		assert.Equal(t, 0, w.Max)
		assert.Equal(t, 7, w.Int())
	})

	t.Run("float value clamps through Int", func(t *testing.T) {
		host := memory.NewHost([]domain.Socket{sel(), dyn("input1"), dyn("input2"), dyn("input3")}, nil)
		w := host.AddWidget(domain.Widget{Name: domain.SocketSelect, Value: float64(9)})

		SyncSelectorBounds(host, domain.SocketSelect)

		assert.Equal(t, 2, w.Max)
		assert.Equal(t, 2, w.Int())
	})

	t.Run("missing widget is a no-op", func(t *testing.T) {
		host := memory.NewHost([]domain.Socket{dyn("input1")}, nil)
		require.NotPanics(t, func() {
			SyncSelectorBounds(host, "select")
		})
	})

	t.Run("empty widget name is a no-op", func(t *testing.T) {
		host := memory.NewHost([]domain.Socket{dyn("input1")}, nil)
		host.AddWidget(domain.Widget{Name: domain.SocketSelect, Value: 3})
		require.NotPanics(t, func() {
			SyncSelectorBounds(host, "")
		})
	})
}
