package domain

// Side distinguishes which side of the node a connection event concerns.
type Side int

const (
	// SideInput is a connection change on an input socket.
	SideInput Side = iota
	// SideOutput is a connection change on an output socket.
	SideOutput
)

// LinkInfo carries the origin of the wire involved in a connection event.
// OriginNode and OriginSlot identify the upstream output the wire comes from.
type LinkInfo struct {
	OriginNode string
	OriginSlot int
	TargetSlot int
}

// ConnectionEvent is raised by the host once per user connect/disconnect.
// Link is nil when the host has no link information for the event; such
// events are treated as no-ops.
type ConnectionEvent struct {
	Side      Side
	Index     int
	Connected bool
	Link      *LinkInfo
}
