package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/ports"
)

// ConfigStore implements ports.ConfigStore using Redis, so several editor
// backends can share one config view of the graph.
type ConfigStore struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a ConfigStore.
type Option func(*ConfigStore)

// WithTTL sets the expiration for stored configs.
func WithTTL(ttl time.Duration) Option {
	return func(s *ConfigStore) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for configs.
func WithPrefix(prefix string) Option {
	return func(s *ConfigStore) {
		s.prefix = prefix
	}
}

// New creates a Redis config store with its own client.
func New(address, password string, db int, opts ...Option) *ConfigStore {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis config store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *ConfigStore {
	store := &ConfigStore{
		client: client,
		prefix: "nodewire:config:",
		ttl:    0, // no expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *ConfigStore) key(nodeID string) string {
	return s.prefix + nodeID
}

// Put stores the config for a node ID.
func (s *ConfigStore) Put(ctx context.Context, nodeID string, cfg domain.NodeConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := s.client.Set(ctx, s.key(nodeID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save config to redis: %w", err)
	}
	return nil
}

// Get returns the stored config, or domain.ErrConfigNotFound.
func (s *ConfigStore) Get(ctx context.Context, nodeID string) (domain.NodeConfig, error) {
	val, err := s.client.Get(ctx, s.key(nodeID)).Result()
	if err != nil {
		if err == backend.Nil {
			return domain.NodeConfig{}, domain.ErrConfigNotFound
		}
		return domain.NodeConfig{}, fmt.Errorf("failed to get config from redis: %w", err)
	}

	var cfg domain.NodeConfig
	if err := json.Unmarshal([]byte(val), &cfg); err != nil {
		return domain.NodeConfig{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Delete removes the config for a node ID.
func (s *ConfigStore) Delete(ctx context.Context, nodeID string) error {
	return s.client.Del(ctx, s.key(nodeID)).Err()
}

// Close closes the redis client.
func (s *ConfigStore) Close() error {
	return s.client.Close()
}

var _ ports.ConfigStore = (*ConfigStore)(nil)
