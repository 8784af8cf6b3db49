package formatstring

import "github.com/dvstudio/nodewire/pkg/domain"

// Fixed output names appended after the template-derived outputs.
const (
	OutputFormatted = "formatted_string"
	OutputSavedPath = "saved_file_path"
)

// FixedInputs returns the three widget inputs every FormatString node
// carries regardless of its template.
func FixedInputs() map[string]domain.InputSpec {
	return map[string]domain.InputSpec{
		domain.WidgetTemplateType: {
			Type:    domain.TypeString,
			Options: []string{domain.TemplateSimple, domain.TemplateJinja},
		},
		domain.WidgetTemplate: {Type: domain.TypeString, Multiline: true},
		domain.WidgetSavePath: {Type: domain.TypeString, Default: ""},
	}
}

// IsFixedInput reports whether name is one of the fixed widget inputs.
func IsFixedInput(name string) bool {
	switch name {
	case domain.WidgetTemplateType, domain.WidgetTemplate, domain.WidgetSavePath:
		return true
	}
	return false
}

// BuildConfig derives a node config from template keys: one STRING input and
// one STRING output per key, plus the fixed widget inputs and the trailing
// formatted_string / saved_file_path outputs.
func BuildConfig(keys []string) domain.NodeConfig {
	cfg := domain.NodeConfig{
		Inputs:  FixedInputs(),
		Outputs: make([]domain.OutputSpec, 0, len(keys)+2),
	}
	for _, key := range keys {
		cfg.Inputs[key] = domain.InputSpec{Type: domain.TypeString, Default: ""}
		cfg.Outputs = append(cfg.Outputs, domain.OutputSpec{Name: key, Type: domain.TypeString})
	}
	cfg.Outputs = append(cfg.Outputs,
		domain.OutputSpec{Name: OutputFormatted, Type: domain.TypeString},
		domain.OutputSpec{Name: OutputSavedPath, Type: domain.TypeString},
	)
	return cfg
}
