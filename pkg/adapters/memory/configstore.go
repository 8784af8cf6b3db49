package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/ports"
)

// Cache tuning for per-node template configs. Configs are recreated on every
// template edit, so a bounded lifetime keeps abandoned node IDs from piling
// up in long editor sessions.
const (
	DefaultExpiration      = 12 * time.Hour
	DefaultCleanupInterval = time.Hour
)

// ConfigStore implements ports.ConfigStore on top of an expiring in-memory
// cache.
type ConfigStore struct {
	cache *gocache.Cache
}

// ConfigStoreOption configures a ConfigStore.
type ConfigStoreOption func(*configStoreSettings)

type configStoreSettings struct {
	expiration time.Duration
	cleanup    time.Duration
}

// WithExpiration overrides how long configs are retained.
func WithExpiration(d time.Duration) ConfigStoreOption {
	return func(s *configStoreSettings) {
		s.expiration = d
	}
}

// NewConfigStore creates an in-memory config store.
func NewConfigStore(opts ...ConfigStoreOption) *ConfigStore {
	settings := configStoreSettings{
		expiration: DefaultExpiration,
		cleanup:    DefaultCleanupInterval,
	}
	for _, opt := range opts {
		opt(&settings)
	}
	return &ConfigStore{cache: gocache.New(settings.expiration, settings.cleanup)}
}

// Put stores the config for a node ID.
func (s *ConfigStore) Put(ctx context.Context, nodeID string, cfg domain.NodeConfig) error {
	s.cache.Set(nodeID, cfg, gocache.DefaultExpiration)
	return nil
}

// Get returns the stored config, or domain.ErrConfigNotFound.
func (s *ConfigStore) Get(ctx context.Context, nodeID string) (domain.NodeConfig, error) {
	v, found := s.cache.Get(nodeID)
	if !found {
		return domain.NodeConfig{}, domain.ErrConfigNotFound
	}
	cfg, ok := v.(domain.NodeConfig)
	if !ok {
		return domain.NodeConfig{}, domain.ErrConfigNotFound
	}
	return cfg, nil
}

var _ ports.ConfigStore = (*ConfigStore)(nil)
