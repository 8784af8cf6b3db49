package memory

import (
	"fmt"

	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/ports"
)

// Host is an in-memory ports.NodeHost. It backs the package tests and gives
// embedders a reference implementation of the capability surface a real
// canvas runtime must provide.
type Host struct {
	inputs  []domain.Socket
	outputs []domain.Output
	widgets map[string]*domain.Widget
	dirty   int
}

// NewHost creates a host node with the given initial sockets.
func NewHost(inputs []domain.Socket, outputs []domain.Output) *Host {
	h := &Host{widgets: make(map[string]*domain.Widget)}
	h.inputs = append(h.inputs, inputs...)
	h.outputs = append(h.outputs, outputs...)
	return h
}

// AddWidget attaches a widget to the node and returns it for test setup.
func (h *Host) AddWidget(w domain.Widget) *domain.Widget {
	ptr := &w
	h.widgets[w.Name] = ptr
	return ptr
}

// Inputs returns a copy of the input list.
func (h *Host) Inputs() []domain.Socket {
	out := make([]domain.Socket, len(h.inputs))
	copy(out, h.inputs)
	return out
}

// InsertInput inserts s at pos, appending when pos is out of range.
func (h *Host) InsertInput(pos int, s domain.Socket) {
	if pos < 0 || pos > len(h.inputs) {
		pos = len(h.inputs)
	}
	h.inputs = append(h.inputs, domain.Socket{})
	copy(h.inputs[pos+1:], h.inputs[pos:])
	h.inputs[pos] = s
}

// RemoveInput drops the socket at pos along with its connection.
func (h *Host) RemoveInput(pos int) {
	if pos < 0 || pos >= len(h.inputs) {
		return
	}
	h.inputs = append(h.inputs[:pos], h.inputs[pos+1:]...)
}

// RenameInput sets the display name at pos.
func (h *Host) RenameInput(pos int, name string) {
	if pos < 0 || pos >= len(h.inputs) {
		return
	}
	h.inputs[pos].Name = name
}

// SetInputType rewrites the type tag at pos.
func (h *Host) SetInputType(pos int, typeTag string) {
	if pos < 0 || pos >= len(h.inputs) {
		return
	}
	h.inputs[pos].Type = typeTag
}

// MoveInput relocates a socket, preserving its connection state.
func (h *Host) MoveInput(from, to int) {
	if from < 0 || from >= len(h.inputs) || to < 0 || to >= len(h.inputs) || from == to {
		return
	}
	s := h.inputs[from]
	h.inputs = append(h.inputs[:from], h.inputs[from+1:]...)
	h.inputs = append(h.inputs, domain.Socket{})
	copy(h.inputs[to+1:], h.inputs[to:])
	h.inputs[to] = s
}

// DisconnectInput detaches the link at pos, leaving the socket in place.
func (h *Host) DisconnectInput(pos int) {
	if pos < 0 || pos >= len(h.inputs) {
		return
	}
	h.inputs[pos].Connected = false
}

// Connect marks the socket at pos as connected. Test helper mirroring the
// canvas wiring a link before it raises the event.
func (h *Host) Connect(pos int) {
	if pos >= 0 && pos < len(h.inputs) {
		h.inputs[pos].Connected = true
	}
}

// Disconnect marks the socket at pos as disconnected.
func (h *Host) Disconnect(pos int) {
	if pos >= 0 && pos < len(h.inputs) {
		h.inputs[pos].Connected = false
	}
}

// Outputs returns a copy of the output list.
func (h *Host) Outputs() []domain.Output {
	out := make([]domain.Output, len(h.outputs))
	copy(out, h.outputs)
	return out
}

// SetOutputs replaces the output list.
func (h *Host) SetOutputs(outs []domain.Output) {
	h.outputs = make([]domain.Output, len(outs))
	copy(h.outputs, outs)
}

// SetOutput rewrites a single output in place.
func (h *Host) SetOutput(pos int, out domain.Output) {
	if pos < 0 || pos >= len(h.outputs) {
		return
	}
	h.outputs[pos] = out
}

// Widget returns the named widget.
func (h *Host) Widget(name string) (*domain.Widget, bool) {
	w, ok := h.widgets[name]
	return w, ok
}

// MarkDirty counts repaint requests.
func (h *Host) MarkDirty() {
	h.dirty++
}

// DirtyCount returns how many repaints the node requested.
func (h *Host) DirtyCount() int { return h.dirty }

var _ ports.NodeHost = (*Host)(nil)

// Graph is an in-memory ports.Graph: a map from node ID to the type tags of
// its output slots.
type Graph struct {
	outputs map[string][]string
}

// NewGraph creates an empty graph lookup.
func NewGraph() *Graph {
	return &Graph{outputs: make(map[string][]string)}
}

// AddNode registers a node's output types.
func (g *Graph) AddNode(nodeID string, outputTypes ...string) {
	g.outputs[nodeID] = outputTypes
}

// OutputType resolves the type tag of an output slot.
func (g *Graph) OutputType(nodeID string, slot int) (string, error) {
	outs, ok := g.outputs[nodeID]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNodeNotFound, nodeID)
	}
	if slot < 0 || slot >= len(outs) {
		return "", fmt.Errorf("node %s has no output slot %d", nodeID, slot)
	}
	return outs[slot], nil
}

var _ ports.Graph = (*Graph)(nil)
