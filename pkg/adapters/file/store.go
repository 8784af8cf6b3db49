package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/ports"
)

// Store implements ports.StateStore on the local filesystem. Saved states
// are JSON files under a base directory; the path supplied by the node's
// save_path widget is resolved relative to it.
type Store struct {
	BasePath string
}

// New creates a Store rooted at basePath, defaulting to ".nodewire/states".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".nodewire", "states")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) resolve(path string) (string, error) {
	if path == "" {
		return "", domain.ErrMissingSavePath
	}
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}
	full := filepath.Join(s.BasePath, filepath.Clean("/"+path))
	return full, nil
}

// Save writes the state to a JSON file atomically: temp file, fsync, rename.
func (s *Store) Save(ctx context.Context, path string, st domain.SavedState) error {
	dest, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("failed to ensure state directory: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	// Same directory as the destination so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(filepath.Dir(dest), "tmp-state-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}

// Load reads the state for a path. Saved states are user-visible files that
// get hand-edited; when strict parsing fails the content is run through
// jsonrepair before giving up.
func (s *Store) Load(ctx context.Context, path string) (domain.SavedState, error) {
	src, err := s.resolve(path)
	if err != nil {
		return domain.SavedState{}, err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.SavedState{}, domain.ErrStateNotFound
		}
		return domain.SavedState{}, fmt.Errorf("failed to read state file: %w", err)
	}

	var st domain.SavedState
	if err := json.Unmarshal(data, &st); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(data))
		if repairErr != nil {
			return domain.SavedState{}, fmt.Errorf("failed to unmarshal state: %w (repair: %v)", err, repairErr)
		}
		if err := json.Unmarshal([]byte(repaired), &st); err != nil {
			return domain.SavedState{}, fmt.Errorf("failed to unmarshal repaired state: %w", err)
		}
	}
	return st, nil
}

var _ ports.StateStore = (*Store)(nil)
