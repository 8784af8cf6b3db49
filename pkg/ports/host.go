package ports

import "github.com/dvstudio/nodewire/pkg/domain"

// NodeHost is the capability surface one node of the host canvas exposes.
// The reconciliation logic talks only to this interface so it carries no
// dependency on any concrete GUI runtime.
//
// Positions are indexes into the input list as returned by Inputs. All
// mutations are synchronous; the host serializes events on its own loop.
type NodeHost interface {
	// Inputs returns the ordered input sockets. The slice is a snapshot;
	// mutations go through the methods below.
	Inputs() []domain.Socket

	// InsertInput inserts a socket at the given position. Positions past the
	// end append.
	InsertInput(pos int, s domain.Socket)

	// RemoveInput removes the socket at the given position together with any
	// attached link.
	RemoveInput(pos int)

	// RenameInput changes the display name of the socket at the position.
	RenameInput(pos int, name string)

	// SetInputType rewrites the type tag of the socket at the position.
	SetInputType(pos int, typeTag string)

	// MoveInput relocates a socket, preserving its connection state.
	MoveInput(from, to int)

	// DisconnectInput detaches the link at the position, leaving the socket.
	DisconnectInput(pos int)

	// Outputs returns the ordered output sockets.
	Outputs() []domain.Output

	// SetOutputs replaces the whole output list.
	SetOutputs(outs []domain.Output)

	// SetOutput rewrites a single output in place.
	SetOutput(pos int, out domain.Output)

	// Widget returns the named widget, or false when the node has none.
	Widget(name string) (*domain.Widget, bool)

	// MarkDirty asks the host to repaint the node.
	MarkDirty()
}

// Graph resolves information about other nodes in the host graph. It is the
// lookup used by type propagation to find the concrete type of an origin
// output.
type Graph interface {
	// OutputType returns the type tag of the given output slot, or
	// domain.ErrNodeNotFound when the node ID does not resolve.
	OutputType(nodeID string, slot int) (string, error)
}
