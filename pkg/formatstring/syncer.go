package formatstring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dvstudio/nodewire/internal/logging"
	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/observability"
	"github.com/dvstudio/nodewire/pkg/ports"
)

// Syncer is the client side of the FormatString workflow: it keeps one host
// node's sockets in step with its template by round-tripping through the
// template service.
//
// Responses are applied as they arrive; a stale response that resolves after
// further edits overwrites newer socket state. The host event loop
// serializes the mutations, so this is a documented last-wins race, not a
// data race.
type Syncer struct {
	nodeID  string
	host    ports.NodeHost
	svc     ports.TemplateService
	notify  ports.Notifier
	log     *slog.Logger
	metrics *observability.Metrics
}

// SyncerOption configures a Syncer.
type SyncerOption func(*Syncer)

// WithSyncerLogger sets a structured logger.
func WithSyncerLogger(log *slog.Logger) SyncerOption {
	return func(s *Syncer) {
		s.log = log
	}
}

// WithNotifier routes user-facing alerts to the host integration.
func WithNotifier(n ports.Notifier) SyncerOption {
	return func(s *Syncer) {
		s.notify = n
	}
}

// WithSyncerMetrics attaches sync counters.
func WithSyncerMetrics(m *observability.Metrics) SyncerOption {
	return func(s *Syncer) {
		s.metrics = m
	}
}

// NewSyncer creates a syncer for one FormatString node.
func NewSyncer(nodeID string, host ports.NodeHost, svc ports.TemplateService, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		nodeID: nodeID,
		host:   host,
		svc:    svc,
		log:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Syncer) alert(msg string) {
	if s.notify != nil {
		s.notify.Alert(msg)
	}
}

func (s *Syncer) widgetText(name string) string {
	w, ok := s.host.Widget(name)
	if !ok {
		return ""
	}
	return w.Text()
}

// TemplateChanged submits the node's current template to the service and
// applies the returned config. Called whenever the template_type or template
// widget value changes. Failures alert the user and leave the node
// unchanged; there is no retry.
func (s *Syncer) TemplateChanged(ctx context.Context) error {
	req := domain.UpdateRequest{
		NodeID:       s.nodeID,
		TemplateType: s.widgetText(domain.WidgetTemplateType),
		Template:     s.widgetText(domain.WidgetTemplate),
	}

	cfg, err := s.svc.UpdateNodeConfig(ctx, req)
	if err != nil {
		s.metrics.Sync("error")
		s.log.Error("template sync failed", "node", s.nodeID, "error", err)
		s.alert(fmt.Sprintf("Failed to update FormatString node: %v", err))
		return err
	}

	s.ApplyConfig(cfg)
	s.metrics.Sync("ok")
	return nil
}

// ApplyConfig reconciles the node's sockets with a parsed config: inputs in
// the config but absent locally are added as STRING sockets, local dynamic
// inputs absent from the config are removed, and the output list is replaced
// wholesale. The fixed widget inputs always survive.
func (s *Syncer) ApplyConfig(cfg domain.NodeConfig) {
	// Remove stale inputs back to front so positions stay valid.
	inputs := s.host.Inputs()
	for i := len(inputs) - 1; i >= 0; i-- {
		name := inputs[i].Name
		if IsFixedInput(name) {
			continue
		}
		if _, keep := cfg.Inputs[name]; !keep {
			s.host.RemoveInput(i)
		}
	}

	present := make(map[string]struct{})
	for _, in := range s.host.Inputs() {
		present[in.Name] = struct{}{}
	}
	// Template order for the additions, not map order.
	for _, out := range cfg.Outputs {
		spec, isInput := cfg.Inputs[out.Name]
		if !isInput || IsFixedInput(out.Name) {
			continue
		}
		if _, ok := present[out.Name]; ok {
			continue
		}
		s.host.InsertInput(len(s.host.Inputs()), domain.Socket{
			Name: out.Name,
			Type: spec.Type,
		})
	}

	outs := make([]domain.Output, 0, len(cfg.Outputs))
	for _, o := range cfg.Outputs {
		outs = append(outs, domain.Output{Name: o.Name, Type: o.Type, Label: o.Name})
	}
	s.host.SetOutputs(outs)
	s.host.MarkDirty()
}

// Load reads persisted state from the path in the save_path widget, applies
// it to the node, and re-triggers the template sync. A missing path blocks
// the load with a user alert and no network call.
func (s *Syncer) Load(ctx context.Context) error {
	path := s.widgetText(domain.WidgetSavePath)
	if path == "" {
		s.alert("A save_path is required to load a FormatString node")
		return domain.ErrMissingSavePath
	}

	st, err := s.svc.LoadState(ctx, path)
	if err != nil {
		s.log.Error("state load failed", "node", s.nodeID, "path", path, "error", err)
		s.alert(fmt.Sprintf("Failed to load FormatString state: %v", err))
		return err
	}
	if st.IsZero() {
		s.log.Debug("no saved state", "node", s.nodeID, "path", path)
		return nil
	}

	if w, ok := s.host.Widget(domain.WidgetTemplateType); ok {
		w.Value = st.TemplateType
	}
	if w, ok := s.host.Widget(domain.WidgetTemplate); ok {
		w.Value = st.Template
	}

	present := make(map[string]struct{})
	for _, in := range s.host.Inputs() {
		present[in.Name] = struct{}{}
	}
	for _, key := range ExtractKeys(st.Template) {
		if _, saved := st.Inputs[key]; !saved {
			continue
		}
		if _, ok := present[key]; ok {
			continue
		}
		s.host.InsertInput(len(s.host.Inputs()), domain.Socket{
			Name: key,
			Type: domain.TypeString,
		})
	}

	return s.TemplateChanged(ctx)
}
