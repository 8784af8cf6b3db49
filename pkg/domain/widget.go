package domain

// Widget mirrors the host runtime's widget surface: a raw value plus the
// numeric bounds used by selector widgets. Value is untyped because the host
// stores strings for template widgets and numbers for selectors.
type Widget struct {
	Name  string
	Value any
	Min   int
	Max   int
}

// Int returns the widget value as an integer. Host runtimes deliver numbers
// as float64 after a JSON round trip, so both are accepted; anything else
// yields 0.
func (w *Widget) Int() int {
	switch v := w.Value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Text returns the widget value as a string, or "" when it is not one.
func (w *Widget) Text() string {
	s, _ := w.Value.(string)
	return s
}
