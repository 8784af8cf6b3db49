package formatstring

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/dvstudio/nodewire/pkg/domain"
)

// DecodeSavedState converts a generic map (as decoded from a JSON body or a
// hand-edited file) into a SavedState. Input values that arrive as numbers
// or booleans are stringified rather than rejected.
func DecodeSavedState(raw map[string]any) (domain.SavedState, error) {
	var st domain.SavedState
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &st,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return domain.SavedState{}, fmt.Errorf("failed to build state decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return domain.SavedState{}, fmt.Errorf("failed to decode saved state: %w", err)
	}
	return st, nil
}
