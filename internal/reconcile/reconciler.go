package reconcile

import (
	"log/slog"

	"github.com/dvstudio/nodewire/internal/logging"
	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/observability"
	"github.com/dvstudio/nodewire/pkg/ports"
)

// Reconciler keeps one node's dynamic input list consistent with its current
// connections. It is the sole entry point for connection-change events: each
// event runs a fixed sequence of idempotent passes (propagate, shrink,
// renumber, grow, widget sync, seed pinning) against the socket model.
//
// The reconciler is synchronous and not safe for concurrent use; the host
// event loop serializes calls.
type Reconciler struct {
	model   *Model
	prop    *Propagator
	prefix  string
	widget  string
	bulk    bool
	log     *slog.Logger
	metrics *observability.Metrics
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger sets a structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(r *Reconciler) {
		r.log = log
	}
}

// WithSelectorWidget names the numeric widget whose bounds track the dynamic
// input count.
func WithSelectorWidget(name string) Option {
	return func(r *Reconciler) {
		r.widget = name
	}
}

// WithMetrics attaches prometheus counters for the reconciliation passes.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Reconciler) {
		r.metrics = m
	}
}

// New creates a reconciler for one host node. prefix is the dynamic socket
// name stem ("input" yields input1, input2, ...).
func New(host ports.NodeHost, graph ports.Graph, prefix string, opts ...Option) *Reconciler {
	r := &Reconciler{
		model:  NewModel(host),
		prefix: prefix,
		log:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.prop = NewPropagator(graph, r.log)
	return r
}

// SetBulk toggles bulk mode. While set, the shrink pass is suppressed so
// programmatic graph construction (deserialization, bulk connects) does not
// delete sockets that are about to be reconnected.
func (r *Reconciler) SetBulk(on bool) {
	r.bulk = on
}

// Bulk runs fn with the shrink pass suppressed. Host integrations wrap graph
// loading in it instead of the reconciler inspecting call stacks.
func (r *Reconciler) Bulk(fn func()) {
	r.SetBulk(true)
	defer r.SetBulk(false)
	fn()
}

// EnsurePlaceholder seeds a freshly created node: a node without any dynamic
// socket gains one wildcard placeholder, and the seed socket is pinned last.
// Safe to call on nodes restored from a serialized graph.
func (r *Reconciler) EnsurePlaceholder() {
	inputs := r.model.Inputs()
	if DynamicCount(inputs) == 0 {
		r.model.AppendInput(domain.Socket{
			Name: DeriveName(r.prefix, 1, NonSeedCount(inputs)+1),
			Role: domain.RoleDynamic,
			Type: r.outputType(),
		})
	}
	r.model.EnsureSeedLast()
	SyncSelectorBounds(r.model.Host(), r.widget)
}

// OnConnectionsChange reconciles the node after one connect or disconnect.
// Events without link information, on the output side, or on a control
// socket skip structural reconciliation.
func (r *Reconciler) OnConnectionsChange(ev domain.ConnectionEvent) {
	if ev.Link == nil || ev.Side == domain.SideOutput {
		return
	}
	inputs := r.model.Inputs()
	if ev.Index >= 0 && ev.Index < len(inputs) && inputs[ev.Index].IsControl() {
		return
	}

	if ev.Connected && dynamicsAreWildcard(inputs) {
		if err := r.prop.Apply(r.model, ev); err != nil {
			// Link torn down; the node is unchanged otherwise.
			r.metrics.RejectLink()
			return
		}
		r.metrics.Pass(observability.PassPropagate)
	}

	if !ev.Connected && !r.bulk {
		r.shrink(ev.Index)
	}

	r.renumber()
	r.grow()
	SyncSelectorBounds(r.model.Host(), r.widget)
	r.model.EnsureSeedLast()
	r.model.Host().MarkDirty()
}

// shrink removes the disconnected socket once the node holds more than one
// dynamic slot beyond its control sockets. Control sockets are never removed.
func (r *Reconciler) shrink(index int) {
	inputs := r.model.Inputs()
	if len(inputs) <= 1+ControlCount(inputs) {
		return
	}
	if index < 0 || index >= len(inputs) || inputs[index].IsControl() {
		return
	}
	r.model.RemoveInput(index)
	r.metrics.Pass(observability.PassShrink)
}

// renumber walks the non-control sockets in order and renames each to
// <prefix><ordinal>, capped at the non-seed count.
func (r *Reconciler) renumber() {
	inputs := r.model.Inputs()
	nonSeed := NonSeedCount(inputs)
	ordinal := 0
	renamed := false
	for i, s := range inputs {
		if s.IsControl() {
			continue
		}
		ordinal++
		name := DeriveName(r.prefix, ordinal, nonSeed)
		if s.Name != name {
			r.model.RenameInput(i, name)
			renamed = true
		}
	}
	if renamed {
		r.metrics.Pass(observability.PassRenumber)
	}
}

// grow appends one placeholder when the last dynamic socket is connected, so
// there is always exactly one open slot to wire into. A node left without
// any dynamic socket also regains its placeholder. The new socket carries
// the node's current output type.
func (r *Reconciler) grow() {
	inputs := r.model.Inputs()
	last := LastDynamicIndex(inputs)
	if last >= 0 && !inputs[last].Connected {
		return
	}
	r.model.AppendInput(domain.Socket{
		Name: DeriveName(r.prefix, DynamicCount(inputs)+1, NonSeedCount(inputs)+1),
		Role: domain.RoleDynamic,
		Type: r.outputType(),
	})
	r.metrics.Pass(observability.PassGrow)
}

// outputType returns the node's current output type, or the wildcard before
// propagation has run.
func (r *Reconciler) outputType() string {
	outs := r.model.Host().Outputs()
	if len(outs) == 0 || outs[0].Type == "" {
		return domain.TypeAny
	}
	return outs[0].Type
}

// dynamicsAreWildcard reports whether no dynamic socket carries a concrete
// type yet, which is the precondition for type propagation.
func dynamicsAreWildcard(inputs []domain.Socket) bool {
	for _, s := range inputs {
		if !s.IsControl() && !s.IsWildcard() {
			return false
		}
	}
	return true
}
