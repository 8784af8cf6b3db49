package reconcile

import (
	"log/slog"

	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/ports"
)

// Propagator applies the first-connection type inference policy: once a real
// connection reaches a wildcard-typed node, the origin's concrete type is
// written to every non-control input and to the output socket.
type Propagator struct {
	graph ports.Graph
	log   *slog.Logger
}

// NewPropagator creates a propagator resolving origin types through graph.
func NewPropagator(graph ports.Graph, log *slog.Logger) *Propagator {
	return &Propagator{graph: graph, log: log}
}

// Apply resolves the origin type for ev and writes it through the node.
// A wildcard origin cannot seed propagation: the freshly made link is torn
// down and domain.ErrUntypedOrigin is returned so the caller can stop
// reconciling. Lookup failures are treated as no-ops, not errors.
// Re-applying with the same origin type changes nothing.
func (p *Propagator) Apply(m *Model, ev domain.ConnectionEvent) error {
	if ev.Link == nil || p.graph == nil {
		return nil
	}

	tag, err := p.graph.OutputType(ev.Link.OriginNode, ev.Link.OriginSlot)
	if err != nil {
		p.log.Debug("origin lookup failed, skipping propagation",
			"origin", ev.Link.OriginNode, "slot", ev.Link.OriginSlot, "err", err)
		return nil
	}

	if tag == "" || tag == domain.TypeAny {
		m.Host().DisconnectInput(ev.Index)
		p.log.Debug("rejected link from untyped origin",
			"origin", ev.Link.OriginNode, "slot", ev.Link.OriginSlot)
		return domain.ErrUntypedOrigin
	}

	for i, s := range m.Inputs() {
		if s.IsControl() || s.Type == tag {
			continue
		}
		m.Host().SetInputType(i, tag)
	}
	m.SetOutputType(tag)
	return nil
}
