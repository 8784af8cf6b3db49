package nodewire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvstudio/nodewire"
	"github.com/dvstudio/nodewire/pkg/adapters/memory"
	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/registry"
)

func socketNames(host *memory.Host) []string {
	inputs := host.Inputs()
	names := make([]string, len(inputs))
	for i, s := range inputs {
		names[i] = s.Name
	}
	return names
}

func TestEngineDefaults(t *testing.T) {
	engine := nodewire.New(memory.NewGraph())

	assert.Equal(t, []string{
		nodewire.NodeRandomChoice,
		nodewire.NodeSwitch,
		nodewire.NodeToJSON,
	}, engine.Types())
}

func TestNodeCreatedUnknownType(t *testing.T) {
	engine := nodewire.New(memory.NewGraph())

	_, err := engine.NodeCreated("Mystery", memory.NewHost(nil, nil))
	assert.Error(t, err)
}

func TestRandomChoiceLifecycle(t *testing.T) {
	graph := memory.NewGraph()
	graph.AddNode("src", domain.TypeString)
	engine := nodewire.New(graph)

	host := memory.NewHost(nil, nil)
	r, err := engine.NodeCreated(nodewire.NodeRandomChoice, host)
	require.NoError(t, err)

	require.Equal(t, []string{"input1", domain.SocketSeed}, socketNames(host))

	host.Connect(0)
	r.OnConnectionsChange(domain.ConnectionEvent{
		Side:      domain.SideInput,
		Index:     0,
		Connected: true,
		Link:      &domain.LinkInfo{OriginNode: "src"},
	})

	require.Equal(t, []string{"input1", "input2", domain.SocketSeed}, socketNames(host))
	assert.Equal(t, domain.TypeString, host.Inputs()[0].Type)
	assert.Equal(t, domain.TypeString, host.Outputs()[0].Type)
}

func TestSwitchGetsControlSockets(t *testing.T) {
	engine := nodewire.New(memory.NewGraph())

	host := memory.NewHost(nil, nil)
	host.AddWidget(domain.Widget{Name: domain.SocketSelect, Value: 1})

	_, err := engine.NodeCreated(nodewire.NodeSwitch, host)
	require.NoError(t, err)

	assert.Equal(t, []string{
		domain.SocketSelect,
		domain.SocketSelMode,
		"input1",
	}, socketNames(host))

	w, ok := host.Widget(domain.SocketSelect)
	require.True(t, ok)
	assert.Equal(t, 0, w.Max)
}

func TestNodeCreatedKeepsExistingControls(t *testing.T) {
	engine := nodewire.New(memory.NewGraph())

	// A node restored from a serialized graph already carries its sockets.
	host := memory.NewHost([]domain.Socket{
		{Name: "input1", Role: domain.RoleDynamic, Type: domain.TypeString, Connected: true},
		{Name: domain.SocketSeed, Role: domain.RoleSeed, Type: domain.TypeInt},
	}, nil)

	_, err := engine.NodeCreated(nodewire.NodeRandomChoice, host)
	require.NoError(t, err)

	assert.Equal(t, []string{"input1", domain.SocketSeed}, socketNames(host))
}

func TestEngineDispatchesEvents(t *testing.T) {
	graph := memory.NewGraph()
	graph.AddNode("src", domain.TypeString)
	engine := nodewire.New(graph)

	host := memory.NewHost(nil, nil)
	_, err := engine.NodeCreated(nodewire.NodeToJSON, host)
	require.NoError(t, err)

	host.Connect(0)
	ev := domain.ConnectionEvent{
		Side:      domain.SideInput,
		Index:     0,
		Connected: true,
		Link:      &domain.LinkInfo{OriginNode: "src"},
	}
	engine.OnConnectionsChange(host, ev)

	assert.Equal(t, []string{"value1", "value2"}, socketNames(host))

	// After removal events for this node are dropped.
	engine.NodeRemoved(host)
	host.Connect(1)
	engine.OnConnectionsChange(host, domain.ConnectionEvent{
		Side:      domain.SideInput,
		Index:     1,
		Connected: true,
		Link:      &domain.LinkInfo{OriginNode: "src"},
	})
	assert.Equal(t, []string{"value1", "value2"}, socketNames(host))
}

func TestCustomRegistration(t *testing.T) {
	engine := nodewire.New(memory.NewGraph())
	engine.Register("Blend", registry.Behavior{Prefix: "layer"})

	host := memory.NewHost(nil, nil)
	_, err := engine.NodeCreated("Blend", host)
	require.NoError(t, err)

	assert.Equal(t, []string{"layer1"}, socketNames(host))
}
