package nodewire

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/dvstudio/nodewire/internal/logging"
	"github.com/dvstudio/nodewire/internal/reconcile"
	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/observability"
	"github.com/dvstudio/nodewire/pkg/ports"
	"github.com/dvstudio/nodewire/pkg/registry"
)

// Node type names handled out of the box.
const (
	NodeRandomChoice = "RandomChoice"
	NodeToJSON       = "ToJSON"
	NodeSwitch       = "Switch"
)

// Engine is the high-level entry point for the nodewire library. The host
// integration registers node types once, then asks the engine for a
// reconciler per node instance.
type Engine struct {
	registry *registry.Registry
	graph    ports.Graph
	log      *slog.Logger
	metrics  *observability.Metrics

	mu    sync.Mutex
	nodes map[ports.NodeHost]*reconcile.Reconciler
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithMetrics attaches prometheus counters to every reconciler the engine
// hands out.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithRegistry injects a custom node-type registry, replacing the defaults.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// New initializes an Engine resolving origin types through graph. The
// default node types (RandomChoice, ToJSON, Switch) are pre-registered;
// WithRegistry replaces them.
func New(graph ports.Graph, opts ...Option) *Engine {
	e := &Engine{
		registry: defaultRegistry(),
		graph:    graph,
		log:      logging.NewNop(),
		nodes:    make(map[ports.NodeHost]*reconcile.Reconciler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register adds or overrides a node type at definition time.
func (e *Engine) Register(nodeType string, b registry.Behavior) {
	e.registry.Register(nodeType, b)
}

// Types returns the registered node type names.
func (e *Engine) Types() []string {
	return e.registry.Types()
}

// NodeCreated is the per-instance lifecycle hook. It equips a freshly
// created (or deserialized) node with its control sockets and the initial
// dynamic placeholder, and returns the reconciler the host must feed every
// connection-change event for that node.
func (e *Engine) NodeCreated(nodeType string, host ports.NodeHost) (*reconcile.Reconciler, error) {
	b, err := e.registry.Lookup(nodeType)
	if err != nil {
		return nil, fmt.Errorf("cannot create node: %w", err)
	}

	ensureControls(host, b)

	r := reconcile.New(host, e.graph, b.Prefix,
		reconcile.WithLogger(e.log),
		reconcile.WithMetrics(e.metrics),
		reconcile.WithSelectorWidget(b.SelectorWidget),
	)
	r.EnsurePlaceholder()

	e.mu.Lock()
	e.nodes[host] = r
	e.mu.Unlock()
	return r, nil
}

// OnConnectionsChange routes a connection event to the reconciler of the node
// it belongs to. Hosts that keep the reconciler returned by NodeCreated can
// call it directly instead.
func (e *Engine) OnConnectionsChange(host ports.NodeHost, ev domain.ConnectionEvent) {
	e.mu.Lock()
	r := e.nodes[host]
	e.mu.Unlock()

	if r == nil {
		e.log.Debug("connection event for untracked node", "index", ev.Index)
		return
	}
	r.OnConnectionsChange(ev)
}

// NodeRemoved drops the engine's reconciler for a deleted node.
func (e *Engine) NodeRemoved(host ports.NodeHost) {
	e.mu.Lock()
	delete(e.nodes, host)
	e.mu.Unlock()
}

// ensureControls appends the behavior's control sockets when the host does
// not carry them yet. Nodes restored from a serialized graph already do.
func ensureControls(host ports.NodeHost, b registry.Behavior) {
	present := make(map[domain.Role]bool)
	for _, s := range host.Inputs() {
		switch {
		case s.Role == domain.RoleSelect || s.Name == domain.SocketSelect:
			present[domain.RoleSelect] = true
		case s.Role == domain.RoleSelMode || s.Name == domain.SocketSelMode:
			present[domain.RoleSelMode] = true
		case s.IsSeed():
			present[domain.RoleSeed] = true
		}
	}

	if b.Select && !present[domain.RoleSelect] {
		host.InsertInput(len(host.Inputs()), domain.Socket{
			Name: domain.SocketSelect, Role: domain.RoleSelect, Type: domain.TypeInt,
		})
	}
	if b.SelMode && !present[domain.RoleSelMode] {
		host.InsertInput(len(host.Inputs()), domain.Socket{
			Name: domain.SocketSelMode, Role: domain.RoleSelMode, Type: domain.TypeString,
		})
	}
	if b.Seed && !present[domain.RoleSeed] {
		host.InsertInput(len(host.Inputs()), domain.Socket{
			Name: domain.SocketSeed, Role: domain.RoleSeed, Type: domain.TypeInt,
		})
	}
}

func defaultRegistry() *registry.Registry {
	r := registry.New()
	r.Register(NodeRandomChoice, registry.Behavior{
		Prefix: "input",
		Seed:   true,
	})
	r.Register(NodeToJSON, registry.Behavior{
		Prefix: "value",
	})
	r.Register(NodeSwitch, registry.Behavior{
		Prefix:         "input",
		Select:         true,
		SelMode:        true,
		SelectorWidget: domain.SocketSelect,
	})
	return r
}
