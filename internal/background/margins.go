package background

import "strings"

// Switch selects what Margins does with the include-margins flag.
type Switch int

const (
	// SwitchToggle flips the flag. It is the zero value.
	SwitchToggle Switch = iota
	SwitchInclude
	SwitchExclude
	SwitchQuery

	// SwitchInvalid is produced by ParseSwitch for unrecognised input.
	SwitchInvalid Switch = -1
)

func (s Switch) String() string {
	switch s {
	case SwitchToggle:
		return "toggle"
	case SwitchInclude:
		return "include"
	case SwitchExclude:
		return "exclude"
	case SwitchQuery:
		return "query"
	}
	return "invalid"
}

// ParseSwitch maps user input onto a Switch. The empty string toggles, like
// calling Margins without an argument.
func ParseSwitch(s string) Switch {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "toggle":
		return SwitchToggle
	case "true", "include", "incl", "on":
		return SwitchInclude
	case "false", "exclude", "excl", "off":
		return SwitchExclude
	case "return", "query":
		return SwitchQuery
	}
	return SwitchInvalid
}

// IncludeMargins reports whether the side aliases (left, right, top, bottom)
// currently refer to the inclusive margin bands.
func (b *Background) IncludeMargins() bool {
	return b.table.IncludeMargins()
}

// SetIncludeMargins sets the flag and rebinds the side aliases of every part.
func (b *Background) SetIncludeMargins(include bool) {
	b.table.SetIncludeMargins(include)
	if include {
		b.info("margins", "including margins")
	} else {
		b.info("margins", "excluding margins")
	}
}

// Toggle flips the flag and returns the new value.
func (b *Background) Toggle() bool {
	b.SetIncludeMargins(!b.IncludeMargins())
	return b.IncludeMargins()
}

// Margins applies sw and returns the flag afterwards. SwitchQuery leaves the
// flag alone; invalid switches are reported and ignored.
func (b *Background) Margins(sw Switch) bool {
	switch sw {
	case SwitchToggle:
		b.Toggle()
	case SwitchInclude:
		b.SetIncludeMargins(true)
	case SwitchExclude:
		b.SetIncludeMargins(false)
	case SwitchQuery:
	default:
		b.warn("margins", "invalid input for margins", "switch", int(sw))
	}
	return b.IncludeMargins()
}
