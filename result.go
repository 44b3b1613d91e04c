package switchboard

import "slices"

// ParseResult is the read-only outcome of a successful parse: the
// switches found, the tokens left over after the switches, and any
// messages produced by argument validators.
type ParseResult struct {
	registry         *Registry
	byOrder          []*Match
	byName           map[string]*Match
	leftovers        []string
	validationErrors []string
	index            int
}

func newParseResult(reg *Registry) *ParseResult {
	return &ParseResult{
		registry: reg,
		byName:   make(map[string]*Match),
	}
}

// add records one occurrence of def. The first occurrence creates the
// Match and appends it to the ordered list; later ones fold into it.
func (r *ParseResult) add(def *SwitchDefinition, value string, hasValue bool) *Match {
	m, ok := r.byName[def.name]
	if !ok {
		m = newMatch(def)
		r.byName[def.name] = m
		r.byOrder = append(r.byOrder, m)
	}
	m.record(value, hasValue)
	return m
}

// addDefault synthesizes a match for def from its default value, unless
// the switch was already seen. It reports whether a match was added.
func (r *ParseResult) addDefault(def *SwitchDefinition, value string) bool {
	if _, seen := r.byName[def.name]; seen {
		return false
	}
	m := r.add(def, value, true)
	m.isDefault = true
	return true
}

// Has reports whether the switch called name was matched, either on
// the command line or from its default value.
func (r *ParseResult) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Get returns the aggregate match for the switch called name.
//
// A registered switch that was never matched yields an empty Match with
// an InvokeCount of zero. A name that was never registered fails with
// an *UnknownSwitchError.
func (r *ParseResult) Get(name string) (*Match, error) {
	if m, ok := r.byName[name]; ok {
		return m, nil
	}
	def, err := r.registry.LookupByName(name)
	if err != nil {
		return nil, err
	}
	return newMatch(def), nil
}

// Values returns every value captured for the switch called name.
func (r *ParseResult) Values(name string) ([]string, error) {
	m, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return m.Values(), nil
}

// First returns the first value captured for the switch called name,
// or "" when it has none.
func (r *ParseResult) First(name string) (string, error) {
	m, err := r.Get(name)
	if err != nil {
		return "", err
	}
	value, _ := m.FirstValue()
	return value, nil
}

// InvokeCount returns how many times the switch called name was
// matched. It is 0 for switches never seen, registered or not.
func (r *ParseResult) InvokeCount(name string) int {
	if m, ok := r.byName[name]; ok {
		return m.invokeCount
	}
	return 0
}

// Matches returns the matches in the order they were created: switches
// found on the command line in the order they were first met, then
// switches filled in from their default values in definition order.
func (r *ParseResult) Matches() []*Match {
	return slices.Clone(r.byOrder)
}

// Leftovers returns the tokens from where parsing stopped to the end.
func (r *ParseResult) Leftovers() []string {
	return slices.Clone(r.leftovers)
}

// ValidationErrors returns the messages produced by argument
// validators, each prefixed with the switch's display name.
func (r *ParseResult) ValidationErrors() []string {
	return slices.Clone(r.validationErrors)
}

// Valid reports whether every captured value passed validation.
func (r *ParseResult) Valid() bool {
	return len(r.validationErrors) == 0
}

// Index returns the position in the token sequence where parsing
// stopped, i.e. the index of the first leftover.
func (r *ParseResult) Index() int {
	return r.index
}
