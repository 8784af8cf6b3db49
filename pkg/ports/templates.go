package ports

import (
	"context"

	"github.com/dvstudio/nodewire/pkg/domain"
)

// TemplateService is the client-side view of the template parser. The HTTP
// adapter implements it against the server endpoints; tests implement it
// directly.
type TemplateService interface {
	// UpdateNodeConfig submits the current template and returns the derived
	// node config.
	UpdateNodeConfig(ctx context.Context, req domain.UpdateRequest) (domain.NodeConfig, error)

	// LoadState retrieves previously persisted node state from a path. A path
	// with nothing saved yields a zero SavedState and no error.
	LoadState(ctx context.Context, filePath string) (domain.SavedState, error)
}

// ConfigStore persists the per-node template configs on the server side.
type ConfigStore interface {
	// Put stores the config for a node ID, replacing any previous one.
	Put(ctx context.Context, nodeID string, cfg domain.NodeConfig) error

	// Get returns the stored config, or domain.ErrConfigNotFound.
	Get(ctx context.Context, nodeID string) (domain.NodeConfig, error)
}

// StateStore persists FormatString node state under caller-supplied paths.
type StateStore interface {
	// Save writes the state for a path, replacing any previous one.
	Save(ctx context.Context, path string, st domain.SavedState) error

	// Load reads the state for a path, or domain.ErrStateNotFound.
	Load(ctx context.Context, path string) (domain.SavedState, error)
}

// Notifier surfaces user-facing alerts. The host integration typically maps
// it to a blocking dialog.
type Notifier interface {
	Alert(msg string)
}
