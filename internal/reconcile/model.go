package reconcile

import (
	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/ports"
)

// Model wraps a host node and keeps the structural invariants of the input
// list intact across edits: the seed socket, when present, is re-pinned to
// the tail after every insertion.
type Model struct {
	host ports.NodeHost
}

// NewModel wraps a host node.
func NewModel(host ports.NodeHost) *Model {
	return &Model{host: host}
}

// Host exposes the underlying capability interface.
func (m *Model) Host() ports.NodeHost { return m.host }

// Inputs returns a snapshot of the ordered input sockets.
func (m *Model) Inputs() []domain.Socket { return m.host.Inputs() }

// InsertInput places s at pos, clamping out-of-range positions to an append,
// and restores the seed-last invariant.
func (m *Model) InsertInput(pos int, s domain.Socket) {
	n := len(m.host.Inputs())
	if pos < 0 || pos > n {
		pos = n
	}
	m.host.InsertInput(pos, s)
	m.EnsureSeedLast()
}

// AppendInput adds s at the end of the input list (before the seed socket,
// which is re-pinned to the tail).
func (m *Model) AppendInput(s domain.Socket) {
	m.InsertInput(len(m.host.Inputs()), s)
}

// RemoveInput drops the socket at pos. Out-of-range positions are ignored.
func (m *Model) RemoveInput(pos int) {
	if pos < 0 || pos >= len(m.host.Inputs()) {
		return
	}
	m.host.RemoveInput(pos)
}

// RenameInput sets the display name of the socket at pos, skipping no-op
// renames so hosts do not repaint needlessly.
func (m *Model) RenameInput(pos int, name string) {
	inputs := m.host.Inputs()
	if pos < 0 || pos >= len(inputs) || inputs[pos].Name == name {
		return
	}
	m.host.RenameInput(pos, name)
}

// SetOutputType rewrites the node's single output so that type, name and
// label all carry the tag. A node without outputs gains one.
func (m *Model) SetOutputType(tag string) {
	want := domain.Output{Name: tag, Type: tag, Label: tag}
	outs := m.host.Outputs()
	if len(outs) == 0 {
		m.host.SetOutputs([]domain.Output{want})
		return
	}
	if outs[0] == want {
		return
	}
	m.host.SetOutput(0, want)
}

// EnsureSeedLast moves the seed socket to the end of the input list.
func (m *Model) EnsureSeedLast() {
	inputs := m.host.Inputs()
	for i, s := range inputs {
		if s.IsSeed() && i != len(inputs)-1 {
			m.host.MoveInput(i, len(inputs)-1)
			return
		}
	}
}
