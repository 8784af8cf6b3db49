package nodewire_test

import (
	"fmt"

	"github.com/dvstudio/nodewire"
	"github.com/dvstudio/nodewire/pkg/adapters/memory"
	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/registry"
)

// Example shows the basic lifecycle: register the node with the engine, feed
// it connection events, and let the reconciler keep the sockets in shape.
func Example() {
	graph := memory.NewGraph()
	graph.AddNode("loader", domain.TypeString)

	engine := nodewire.New(graph)

	host := memory.NewHost(nil, nil)
	reconciler, err := engine.NodeCreated(nodewire.NodeRandomChoice, host)
	if err != nil {
		panic(err)
	}

	host.Connect(0)
	reconciler.OnConnectionsChange(domain.ConnectionEvent{
		Side:      domain.SideInput,
		Index:     0,
		Connected: true,
		Link:      &domain.LinkInfo{OriginNode: "loader"},
	})

	for _, s := range host.Inputs() {
		fmt.Printf("%s %s\n", s.Name, s.Type)
	}
	// Output:
	// input1 STRING
	// input2 STRING
	// seed INT
}

// ExampleEngine_Register wires a custom node type into the engine.
func ExampleEngine_Register() {
	engine := nodewire.New(memory.NewGraph())
	engine.Register("Blend", registry.Behavior{Prefix: "layer"})

	host := memory.NewHost(nil, nil)
	if _, err := engine.NodeCreated("Blend", host); err != nil {
		panic(err)
	}

	fmt.Println(host.Inputs()[0].Name)
	// Output: layer1
}
