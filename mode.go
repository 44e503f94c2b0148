package pretty

// Mode is the render mode of a Break. The zero value is Space.
type Mode uint8

const (
	Space Mode = iota
	Newline
)

// String returns "space" or "newline".
func (m Mode) String() string {
	switch m {
	case Space:
		return "space"
	case Newline:
		return "newline"
	default:
		return "unknown"
	}
}

// GroupState is the breaking state of a Group. A group moves from Unbroken
// to Marked to Broken, one step per fitting pass. The zero value is Unbroken.
type GroupState uint8

const (
	// Unbroken groups have not been selected for breaking.
	Unbroken GroupState = iota
	// Marked groups are selected; their breaks are still flat.
	Marked
	// Broken groups have turned their own breaks into newlines.
	Broken
)

// String returns "unbroken", "marked" or "broken".
func (s GroupState) String() string {
	switch s {
	case Unbroken:
		return "unbroken"
	case Marked:
		return "marked"
	case Broken:
		return "broken"
	default:
		return "unknown"
	}
}
