package switchboard

import (
	"errors"
	"fmt"
	"strings"
)

// Base Error types for tag parsing errors
var (
	ErrEmptySwitchTag       = errors.New("switch tag names no switch")
	ErrUnknownTagModifier   = errors.New("switch tag modifier is not allowed")
	ErrInvalidLeftoversType = errors.New("leftovers field must be of type []string")
)

// SwitchTag corresponds to the `switch` tag on a struct field.
//
// Tag grammar:
//
//	switch:"<name>"        bind the switch called <name>
//	switch:",leftovers"    bind the leftover tokens
//	switch:"-"             ignore the field
type SwitchTag struct {
	Name      string
	Leftovers bool
	Ignore    bool
}

// ParseSwitchTag parses the value of a `switch` struct tag.
func ParseSwitchTag(tag string) (SwitchTag, error) {
	if tag == SwitchTagIgnoreMarker {
		return SwitchTag{Ignore: true}, nil
	}

	name, modifiers, _ := strings.Cut(tag, SwitchTagKVDelimiter)
	st := SwitchTag{Name: strings.TrimSpace(name)}

	for _, mod := range strings.Split(modifiers, SwitchTagKVDelimiter) {
		switch strings.TrimSpace(mod) {
		case "":
		case LeftoversTagModifier:
			st.Leftovers = true
		default:
			return SwitchTag{}, fmt.Errorf("%w: %q", ErrUnknownTagModifier, mod)
		}
	}

	if st.Leftovers && st.Name != "" {
		return SwitchTag{}, fmt.Errorf("%w: %q binds leftovers and cannot name a switch", ErrUnknownTagModifier, tag)
	}
	if !st.Leftovers && st.Name == "" {
		return SwitchTag{}, ErrEmptySwitchTag
	}
	return st, nil
}
