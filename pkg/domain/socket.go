package domain

// TypeAny is the wildcard type tag. Sockets are created with it and keep it
// until a concrete type flows through the first real connection.
const TypeAny = "*"

// TypeString is the tag used for template-derived inputs and outputs.
const TypeString = "STRING"

// TypeInt is the tag used for seed and selector sockets.
const TypeInt = "INT"

// Role identifies the fixed-role control sockets. Everything else is dynamic.
type Role string

const (
	// RoleDynamic marks an auto-managed, renumbered input.
	RoleDynamic Role = "dynamic"
	// RoleSelect is the selector-index socket. Never renumbered.
	RoleSelect Role = "select"
	// RoleSelMode is the selector-mode socket. Never renumbered.
	RoleSelMode Role = "sel_mode"
	// RoleSeed is the seed socket. Always kept as the last input.
	RoleSeed Role = "seed"
)

// Reserved control socket names. Hosts that create sockets by name only
// (without a role) are still classified correctly.
const (
	SocketSelect  = "select"
	SocketSelMode = "sel_mode"
	SocketSeed    = "seed"
)

// Socket is one input pin of a node. Name is unique within the input list at
// any instant and mutable (dynamic sockets are renumbered in place).
type Socket struct {
	Name      string `json:"name"`
	Role      Role   `json:"role,omitempty"`
	Type      string `json:"type"`
	Connected bool   `json:"connected"`
}

// IsControl reports whether the socket is one of the fixed-role sockets,
// matching by role first and by reserved name as a fallback.
func (s Socket) IsControl() bool {
	switch s.Role {
	case RoleSelect, RoleSelMode, RoleSeed:
		return true
	case RoleDynamic:
		return false
	}
	switch s.Name {
	case SocketSelect, SocketSelMode, SocketSeed:
		return true
	}
	return false
}

// IsSeed reports whether the socket is the seed socket.
func (s Socket) IsSeed() bool {
	return s.Role == RoleSeed || (s.Role == "" && s.Name == SocketSeed)
}

// IsWildcard reports whether the socket type is still undetermined.
func (s Socket) IsWildcard() bool {
	return s.Type == "" || s.Type == TypeAny
}

// Output is one output pin. Label mirrors Name for host runtimes that render
// the two separately.
type Output struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`
}
