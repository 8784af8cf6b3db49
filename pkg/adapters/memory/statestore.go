package memory

import (
	"context"
	"sync"

	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/ports"
)

// StateStore implements ports.StateStore in memory.
// Safe for concurrent use.
type StateStore struct {
	data map[string]domain.SavedState
	mu   sync.RWMutex
}

// NewStateStore creates an empty in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{data: make(map[string]domain.SavedState)}
}

// Save persists the state under the path.
func (s *StateStore) Save(ctx context.Context, path string, st domain.SavedState) error {
	// Copy the inputs map so the caller cannot mutate stored state.
	copied := st
	copied.Inputs = make(map[string]string, len(st.Inputs))
	for k, v := range st.Inputs {
		copied.Inputs[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[path] = copied
	return nil
}

// Load retrieves the state for the path.
func (s *StateStore) Load(ctx context.Context, path string) (domain.SavedState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.data[path]
	if !ok {
		return domain.SavedState{}, domain.ErrStateNotFound
	}

	ret := st
	ret.Inputs = make(map[string]string, len(st.Inputs))
	for k, v := range st.Inputs {
		ret.Inputs[k] = v
	}
	return ret, nil
}

var _ ports.StateStore = (*StateStore)(nil)
