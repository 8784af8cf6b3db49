package domain

// Fixed FormatString widget inputs. These survive every template sync.
const (
	WidgetTemplateType = "template_type"
	WidgetTemplate     = "template"
	WidgetSavePath     = "save_path"
)

// Template engine names accepted by the template_type widget.
const (
	TemplateSimple = "Simple"
	TemplateJinja  = "Jinja2"
)

// InputSpec describes one input of a FormatString node config.
type InputSpec struct {
	Type      string   `json:"type"`
	Options   []string `json:"options,omitempty"`
	Multiline bool     `json:"multiline,omitempty"`
	Default   string   `json:"default,omitempty"`
}

// OutputSpec describes one output of a FormatString node config.
type OutputSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// NodeConfig is the parser's answer for a template: the inputs the node must
// expose and the outputs it produces, in template order.
type NodeConfig struct {
	Inputs  map[string]InputSpec `json:"inputs"`
	Outputs []OutputSpec         `json:"outputs"`
}

// UpdateRequest is the body of an update_format_string_node call.
type UpdateRequest struct {
	NodeID       string `json:"nodeId"`
	TemplateType string `json:"template_type"`
	Template     string `json:"template"`
}

// SavedState is the persisted form of a FormatString node: the template, its
// engine, and the last value of every template-derived input.
type SavedState struct {
	TemplateType string            `json:"template_type" mapstructure:"template_type"`
	Template     string            `json:"template" mapstructure:"template"`
	Inputs       map[string]string `json:"inputs" mapstructure:"inputs"`
}

// IsZero reports whether the state carries nothing worth applying.
func (s SavedState) IsZero() bool {
	return s.TemplateType == "" && s.Template == "" && len(s.Inputs) == 0
}
