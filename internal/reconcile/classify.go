package reconcile

import "github.com/dvstudio/nodewire/pkg/domain"

// Classification of the input list into control and dynamic sockets. This is
// pure bookkeeping over a snapshot; it holds no state of its own.

// ControlCount returns how many control sockets the list contains.
func ControlCount(inputs []domain.Socket) int {
	n := 0
	for _, s := range inputs {
		if s.IsControl() {
			n++
		}
	}
	return n
}

// DynamicCount returns how many dynamic sockets the list contains.
func DynamicCount(inputs []domain.Socket) int {
	return len(inputs) - ControlCount(inputs)
}

// NonSeedCount returns the input count excluding the seed socket. Dynamic
// socket names are capped at this value.
func NonSeedCount(inputs []domain.Socket) int {
	n := len(inputs)
	if SeedIndex(inputs) >= 0 {
		n--
	}
	return n
}

// HasSelect reports whether a select socket is present.
func HasSelect(inputs []domain.Socket) bool {
	for _, s := range inputs {
		if s.Role == domain.RoleSelect || (s.Role == "" && s.Name == domain.SocketSelect) {
			return true
		}
	}
	return false
}

// SeedIndex returns the position of the seed socket, or -1.
func SeedIndex(inputs []domain.Socket) int {
	for i, s := range inputs {
		if s.IsSeed() {
			return i
		}
	}
	return -1
}

// LastDynamicIndex returns the position of the last dynamic socket, or -1.
// This is the socket the grow pass inspects; walking from the tail skips any
// trailing select/sel_mode/seed sockets.
func LastDynamicIndex(inputs []domain.Socket) int {
	for i := len(inputs) - 1; i >= 0; i-- {
		if !inputs[i].IsControl() {
			return i
		}
	}
	return -1
}
