package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveName(t *testing.T) {
	tests := []struct {
		name         string
		prefix       string
		ordinal      int
		nonSeedCount int
		want         string
	}{
		{"first slot", "input", 1, 3, "input1"},
		{"middle slot", "input", 2, 3, "input2"},
		{"capped at non-seed count", "input", 5, 3, "input3"},
		{"ordinal below one clamps to one", "input", 0, 3, "input1"},
		{"negative ordinal clamps to one", "input", -2, 3, "input1"},
		{"zero non-seed count leaves ordinal", "value", 4, 0, "value4"},
		{"other prefix", "value", 2, 2, "value2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveName(tt.prefix, tt.ordinal, tt.nonSeedCount))
		})
	}
}
