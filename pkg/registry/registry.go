package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Behavior describes the socket policy of one dynamic node type: the stem
// used for dynamic socket names and which control sockets the type carries.
type Behavior struct {
	// Prefix is the dynamic socket name stem ("input" -> input1, input2...).
	Prefix string

	// Seed adds an INT seed socket pinned to the input tail.
	Seed bool

	// Select adds a selector-index socket, SelMode its companion mode socket.
	Select  bool
	SelMode bool

	// SelectorWidget names the numeric widget tracking the dynamic input
	// count, empty when the type has none.
	SelectorWidget string
}

// Registry maps node type names to behaviors. Registration happens once per
// type at definition time; lookups run on every node creation.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Behavior
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		types: make(map[string]Behavior),
	}
}

// Register adds a node type to the registry.
// If a type with the same name exists, it is overwritten.
func (r *Registry) Register(nodeType string, b Behavior) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[nodeType] = b
}

// Lookup returns the behavior for a node type.
func (r *Registry) Lookup(nodeType string) (Behavior, error) {
	r.mu.RLock()
	b, ok := r.types[nodeType]
	r.mu.RUnlock()

	if !ok {
		return Behavior{}, fmt.Errorf("node type not registered: %s", nodeType)
	}
	return b, nil
}

// Types returns the registered type names in deterministic order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
