package domain

import "errors"

// ErrNodeNotFound is returned when a graph lookup cannot resolve a node ID.
var ErrNodeNotFound = errors.New("node not found")

// ErrStateNotFound is returned when no saved state exists at the given path.
var ErrStateNotFound = errors.New("saved state not found")

// ErrConfigNotFound is returned when no config is stored for a node ID.
var ErrConfigNotFound = errors.New("node config not found")

// ErrMissingSavePath is returned when a load is requested without a save_path.
var ErrMissingSavePath = errors.New("save_path is required")

// ErrUntypedOrigin is returned when type propagation is attempted from an
// origin whose type is still the wildcard. The offending link is torn down.
var ErrUntypedOrigin = errors.New("origin socket type is undetermined")
