package switchboard

// ArgumentDefinition describes the argument a switch takes.
//
// An argument is either required or optional, never both. Its default
// value is used when the switch never appears on the command line (and,
// for optional arguments, when the switch appears last with nothing
// after it). The implicit value is carried for callers; the parser does
// not consume it.
//
// ArgumentDefinitions are created through SwitchBuilder and are
// read-only once the Registry is built.
type ArgumentDefinition struct {
	name        string
	description string
	required    bool

	defaultValue    string
	hasDefault      bool
	implicitValue   string
	hasImplicit     bool
	validationChain ValidationChain
}

func newArgumentDefinition(name, description string, required bool) *ArgumentDefinition {
	return &ArgumentDefinition{
		name:        name,
		description: description,
		required:    required,
	}
}

// Name returns the display name of the argument, e.g. "<path>".
func (arg *ArgumentDefinition) Name() string { return arg.name }

// Description returns the one line description of the argument.
func (arg *ArgumentDefinition) Description() string { return arg.description }

// IsRequired reports whether the switch must be given a value.
func (arg *ArgumentDefinition) IsRequired() bool { return arg.required }

// IsOptional reports whether the value may be left off.
func (arg *ArgumentDefinition) IsOptional() bool { return !arg.required }

// DefaultValue returns the configured default, if any.
func (arg *ArgumentDefinition) DefaultValue() (string, bool) {
	return arg.defaultValue, arg.hasDefault
}

// ImplicitValue returns the configured implicit value, if any.
func (arg *ArgumentDefinition) ImplicitValue() (string, bool) {
	return arg.implicitValue, arg.hasImplicit
}

// ValidatorCount returns how many validators the argument runs.
func (arg *ArgumentDefinition) ValidatorCount() int {
	return len(arg.validationChain)
}

// Validate runs the argument's validators, in the order they were
// added, and returns all of their messages.
func (arg *ArgumentDefinition) Validate(value string) []string {
	return arg.validationChain.Validate(value)
}

// clone returns a copy that shares no mutable state with arg.
func (arg *ArgumentDefinition) clone() *ArgumentDefinition {
	if arg == nil {
		return nil
	}
	c := *arg
	c.validationChain = append(ValidationChain(nil), arg.validationChain...)
	return &c
}
