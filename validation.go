package switchboard

///////////////////////////////////////////////////////////////////////////////
// Validator
///////////////////////////////////////////////////////////////////////////////

// Validator checks a single argument value.
//
// Validate returns one message per problem found, or nothing when the
// value is acceptable. The messages are user facing; the parser
// prefixes them with the switch's display name before collecting them
// on the ParseResult.
type Validator interface {
	Validate(value string) []string
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(value string) []string

// Validate implements Validator.
func (fn ValidatorFunc) Validate(value string) []string {
	return fn(value)
}

// ValidationChain runs an ordered list of validators over a value and
// gathers every message they return. A chain never stops early.
type ValidationChain []Validator

// Validate implements Validator.
func (chain ValidationChain) Validate(value string) []string {
	var msgs []string
	for _, v := range chain {
		if v == nil {
			continue
		}
		msgs = append(msgs, v.Validate(value)...)
	}
	return msgs
}

///////////////////////////////////////////////////////////////////////////////
// Validation pass
///////////////////////////////////////////////////////////////////////////////

// validateMatches runs each argument-taking switch's validators over
// every value captured for it, in match order.
func validateMatches(matches []*Match) []string {
	var errs []string
	for _, m := range matches {
		def := m.Definition()
		if !def.HasArgument() {
			continue
		}

		// prefix every message with the switch so the user knows
		// which one got them into trouble
		prefix := def.DisplayName()
		for _, value := range m.values {
			for _, msg := range def.Argument().Validate(value) {
				errs = append(errs, prefix+": "+msg)
			}
		}
	}
	return errs
}
