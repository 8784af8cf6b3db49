package formatstring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dvstudio/nodewire/internal/logging"
	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/ports"
)

// Service is the server side of the FormatString workflow: it parses
// templates into node configs, remembers them per node ID, and loads
// persisted node state. It satisfies ports.TemplateService so in-process
// embedders can skip HTTP entirely.
type Service struct {
	configs ports.ConfigStore
	states  ports.StateStore
	log     *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets a structured logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.log = log
	}
}

// NewService creates a template service over the given stores.
func NewService(configs ports.ConfigStore, states ports.StateStore, opts ...ServiceOption) *Service {
	s := &Service{
		configs: configs,
		states:  states,
		log:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpdateNodeConfig parses the template, stores the derived config under the
// node ID, and returns it.
func (s *Service) UpdateNodeConfig(ctx context.Context, req domain.UpdateRequest) (domain.NodeConfig, error) {
	if req.NodeID == "" {
		return domain.NodeConfig{}, fmt.Errorf("nodeId is required")
	}

	keys := ExtractKeys(req.Template)
	cfg := BuildConfig(keys)

	if err := s.configs.Put(ctx, req.NodeID, cfg); err != nil {
		return domain.NodeConfig{}, fmt.Errorf("failed to store config for node %s: %w", req.NodeID, err)
	}

	s.log.Debug("updated node config", "node", req.NodeID, "keys", len(keys))
	return cfg, nil
}

// NodeConfig returns the stored config for a node ID, or
// domain.ErrConfigNotFound.
func (s *Service) NodeConfig(ctx context.Context, nodeID string) (domain.NodeConfig, error) {
	return s.configs.Get(ctx, nodeID)
}

// LoadState retrieves persisted node state. A path with nothing saved yields
// a zero state and no error, mirroring the wire contract of an empty body.
func (s *Service) LoadState(ctx context.Context, filePath string) (domain.SavedState, error) {
	if filePath == "" {
		return domain.SavedState{}, domain.ErrMissingSavePath
	}

	st, err := s.states.Load(ctx, filePath)
	if err != nil {
		if errors.Is(err, domain.ErrStateNotFound) {
			return domain.SavedState{}, nil
		}
		return domain.SavedState{}, fmt.Errorf("failed to load state from %s: %w", filePath, err)
	}
	return st, nil
}

// SaveState persists node state under the path.
func (s *Service) SaveState(ctx context.Context, filePath string, st domain.SavedState) error {
	if filePath == "" {
		return domain.ErrMissingSavePath
	}
	if err := s.states.Save(ctx, filePath, st); err != nil {
		return fmt.Errorf("failed to save state to %s: %w", filePath, err)
	}
	return nil
}

var _ ports.TemplateService = (*Service)(nil)
