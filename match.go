package switchboard

import "slices"

// Match is what the parser recorded for one switch during one parse.
//
// Repeated occurrences of a switch are folded into a single Match:
// each occurrence increments InvokeCount and appends its value. A
// switch without an argument records BooleanValue once per
// occurrence. An optional argument that was left off with no default
// records nothing.
type Match struct {
	definition  *SwitchDefinition
	values      []string
	invokeCount int
	isDefault   bool
}

func newMatch(def *SwitchDefinition) *Match {
	return &Match{definition: def}
}

// Definition returns the switch this match satisfies.
func (m *Match) Definition() *SwitchDefinition { return m.definition }

// Name returns the name of the matched switch.
func (m *Match) Name() string { return m.definition.name }

// Values returns every value captured for the switch, in order.
func (m *Match) Values() []string { return slices.Clone(m.values) }

// FirstValue returns the first value captured for the switch. It is the
// accessor to use for switches that cannot repeat.
func (m *Match) FirstValue() (string, bool) {
	if len(m.values) == 0 {
		return "", false
	}
	return m.values[0], true
}

func (m *Match) InvokeCount() int { return m.invokeCount }

// IsDefaultValue reports whether this match was synthesized from the
// argument's default value because the switch never appeared.
func (m *Match) IsDefaultValue() bool { return m.isDefault }

func (m *Match) record(value string, hasValue bool) {
	m.invokeCount++
	if hasValue {
		m.values = append(m.values, value)
	}
}
