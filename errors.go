package switchboard

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateName        = errors.New("a switch with this name is already defined")
	ErrUnknownSwitch        = errors.New("unknown switch")
	ErrMissingArgument      = errors.New("switch expected argument")
	ErrInvalidSpelling      = errors.New("invalid switch spelling")
	ErrNoArgument           = errors.New("switch has no argument defined")
	ErrSpellingCollision    = errors.New("switch spelling already claimed by another switch")
	ErrStartIndexOutOfRange = errors.New("start index is outside of the token sequence")
	ErrNilRegistry          = errors.New("parser has no registry")
)

// DuplicateNameError is returned when a second switch is defined under
// a name that is already registered.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("switch name %q already defined", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// UnknownSwitchError is returned when a short letter, long name, or
// switch name is not registered. Switch holds the spelling exactly as
// it was looked up, without any leading dashes.
type UnknownSwitchError struct {
	Switch string
}

func (e *UnknownSwitchError) Error() string {
	return "unknown switch " + e.Switch
}

func (e *UnknownSwitchError) Is(target error) bool {
	return target == ErrUnknownSwitch
}

// MissingArgumentError is returned when a switch that requires an
// argument has nothing to draw it from, or what it drew is blank.
// Switch is the spelling the user typed, dashes included (e.g. "-I").
type MissingArgumentError struct {
	Switch string
}

func (e *MissingArgumentError) Error() string {
	return "switch " + e.Switch + " expected argument"
}

func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}
