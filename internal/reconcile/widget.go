package reconcile

import "github.com/dvstudio/nodewire/pkg/ports"

// SyncSelectorBounds clamps the named selector widget against the current
// dynamic input count: max is the dynamic count, minus one when a select
// socket is itself among the inputs. Value is clamped into [1, max]; a zero
// value is promoted to 1 while max allows it. A missing widget or a max of
// zero leaves the value untouched.
func SyncSelectorBounds(host ports.NodeHost, widgetName string) {
	if widgetName == "" {
		return
	}
	w, ok := host.Widget(widgetName)
	if !ok {
		return
	}

	inputs := host.Inputs()
	max := DynamicCount(inputs)
	if HasSelect(inputs) {
		max--
	}
	if max < 0 {
		max = 0
	}
	w.Max = max
	if max == 0 {
		return
	}

	v := w.Int()
	if v == 0 {
		v = 1
	}
	if v > max {
		v = max
	}
	if v < 1 {
		v = 1
	}
	w.Value = v
}
