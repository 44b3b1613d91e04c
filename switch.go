package switchboard

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Flags is a bitset of optional switch behaviors.
type Flags uint8

const FlagNone Flags = 0

const (
	// FlagRepeatable marks a switch that may appear more than once.
	FlagRepeatable Flags = 1 << iota
	// FlagActsAsCommand groups a switch with the sub-command-like
	// switches when rendering help. It does not change parsing.
	FlagActsAsCommand
)

// Has reports whether every bit in f2 is set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

///////////////////////////////////////////////////////////////////////////////
// SwitchDefinition
///////////////////////////////////////////////////////////////////////////////

// SwitchDefinition describes one logical switch: its unique name, the
// short and long spellings it answers to, its flags and the argument
// it takes, if any.
//
// SwitchDefinitions are read-only. They are created with
// RegistryBuilder.Define and frozen by RegistryBuilder.Build.
type SwitchDefinition struct {
	name            string
	description     string
	longDescription string
	shortForms      []string
	longForms       []string
	argument        *ArgumentDefinition
	flags           Flags
}

func (sw *SwitchDefinition) Name() string            { return sw.name }
func (sw *SwitchDefinition) Description() string     { return sw.description }
func (sw *SwitchDefinition) LongDescription() string { return sw.longDescription }
func (sw *SwitchDefinition) Flags() Flags            { return sw.flags }

// ShortForms returns the short spellings, without the leading "-", in
// the order they were added.
func (sw *SwitchDefinition) ShortForms() []string { return slices.Clone(sw.shortForms) }

// LongForms returns the long spellings, without the leading "--", in
// the order they were added.
func (sw *SwitchDefinition) LongForms() []string { return slices.Clone(sw.longForms) }

// Argument returns the switch's argument definition, or nil when the
// switch takes no argument.
func (sw *SwitchDefinition) Argument() *ArgumentDefinition { return sw.argument }

func (sw *SwitchDefinition) HasArgument() bool { return sw.argument != nil }

func (sw *SwitchDefinition) HasOptionalArgument() bool {
	return sw.argument != nil && sw.argument.IsOptional()
}

func (sw *SwitchDefinition) HasRequiredArgument() bool {
	return sw.argument != nil && sw.argument.IsRequired()
}

func (sw *SwitchDefinition) IsRepeatable() bool  { return sw.flags.Has(FlagRepeatable) }
func (sw *SwitchDefinition) ActsAsCommand() bool { return sw.flags.Has(FlagActsAsCommand) }

// DisplayName returns the spelling used when talking to the user about
// this switch: the first long form if there is one, otherwise the first
// short form, otherwise "".
func (sw *SwitchDefinition) DisplayName() string {
	switch {
	case len(sw.longForms) > 0:
		return LongPrefix + sw.longForms[0]
	case len(sw.shortForms) > 0:
		return ShortPrefix + sw.shortForms[0]
	default:
		return ""
	}
}

// Spellings returns every way of invoking the switch, dashes included:
// the sorted short forms followed by the sorted long forms.
func (sw *SwitchDefinition) Spellings() []string {
	shorts := make([]string, 0, len(sw.shortForms))
	for _, s := range sw.shortForms {
		shorts = append(shorts, ShortPrefix+s)
	}
	longs := make([]string, 0, len(sw.longForms))
	for _, l := range sw.longForms {
		longs = append(longs, LongPrefix+l)
	}
	slices.Sort(shorts)
	slices.Sort(longs)
	return append(shorts, longs...)
}

func (sw *SwitchDefinition) clone() *SwitchDefinition {
	c := *sw
	c.shortForms = slices.Clone(sw.shortForms)
	c.longForms = slices.Clone(sw.longForms)
	c.argument = sw.argument.clone()
	return &c
}

///////////////////////////////////////////////////////////////////////////////
// SwitchBuilder
///////////////////////////////////////////////////////////////////////////////

// SwitchBuilder configures a switch defined with RegistryBuilder.Define.
//
// Every method returns the builder so calls can be chained. Mistakes
// (a spelling starting with "-", a default value on a switch with no
// argument, ...) are recorded on the RegistryBuilder and returned by
// Build.
//
// The definition being built is private to the builder. Build copies
// it into the Registry, so changes made through the builder afterwards
// never reach a Registry that was already built.
type SwitchBuilder struct {
	owner *RegistryBuilder
	draft *SwitchDefinition
}

// Short adds one or more short spellings, e.g. Short("h", "?").
// Each must be a single character and must not start with "-".
func (sb *SwitchBuilder) Short(forms ...string) *SwitchBuilder {
	for _, form := range forms {
		if err := checkSpelling(form); err != nil {
			sb.fail(fmt.Errorf("short form %q: %w", form, err))
			continue
		}
		if utf8.RuneCountInString(form) != 1 {
			sb.fail(fmt.Errorf("short form %q: %w: must be a single character", form, ErrInvalidSpelling))
			continue
		}
		if !slices.Contains(sb.draft.shortForms, form) {
			sb.draft.shortForms = append(sb.draft.shortForms, form)
		}
	}
	return sb
}

// Long adds one or more long spellings, e.g. Long("help").
// Each must not start with "-" and must not contain "=".
func (sb *SwitchBuilder) Long(forms ...string) *SwitchBuilder {
	for _, form := range forms {
		if err := checkSpelling(form); err != nil {
			sb.fail(fmt.Errorf("long form %q: %w", form, err))
			continue
		}
		if strings.Contains(form, LongValueSplitter) {
			sb.fail(fmt.Errorf("long form %q: %w: must not contain %q", form, ErrInvalidSpelling, LongValueSplitter))
			continue
		}
		if !slices.Contains(sb.draft.longForms, form) {
			sb.draft.longForms = append(sb.draft.longForms, form)
		}
	}
	return sb
}

func (sb *SwitchBuilder) LongDescription(desc string) *SwitchBuilder {
	sb.draft.longDescription = desc
	return sb
}

// Repeatable allows the switch to appear, and accumulate values, more
// than once.
func (sb *SwitchBuilder) Repeatable() *SwitchBuilder {
	sb.draft.flags |= FlagRepeatable
	return sb
}

// ActsAsCommand marks the switch as a sub-command-like switch for help
// rendering.
func (sb *SwitchBuilder) ActsAsCommand() *SwitchBuilder {
	sb.draft.flags |= FlagActsAsCommand
	return sb
}

// RequiredArg gives the switch an argument that must be supplied.
// It replaces any argument set earlier.
func (sb *SwitchBuilder) RequiredArg(name, desc string) *SwitchBuilder {
	sb.draft.argument = newArgumentDefinition(name, desc, true)
	return sb
}

// OptionalArg gives the switch an argument that may be left off.
// It replaces any argument set earlier.
func (sb *SwitchBuilder) OptionalArg(name, desc string) *SwitchBuilder {
	sb.draft.argument = newArgumentDefinition(name, desc, false)
	return sb
}

// DefaultValue sets the value used when the switch is never given.
// The switch must already have an argument.
func (sb *SwitchBuilder) DefaultValue(value string) *SwitchBuilder {
	if sb.requireArgument("default value") {
		sb.draft.argument.defaultValue = value
		sb.draft.argument.hasDefault = true
	}
	return sb
}

// ImplicitValue records the value a caller should assume when the
// switch is given without an argument.
func (sb *SwitchBuilder) ImplicitValue(value string) *SwitchBuilder {
	if sb.requireArgument("implicit value") {
		sb.draft.argument.implicitValue = value
		sb.draft.argument.hasImplicit = true
	}
	return sb
}

// Validators appends checks run over every value of the argument.
func (sb *SwitchBuilder) Validators(validators ...Validator) *SwitchBuilder {
	if sb.requireArgument("validator") {
		sb.draft.argument.validationChain = append(sb.draft.argument.validationChain, validators...)
	}
	return sb
}

func (sb *SwitchBuilder) requireArgument(what string) bool {
	if sb.draft.argument == nil {
		sb.fail(fmt.Errorf("%s: %w: set a required or optional argument first", what, ErrNoArgument))
		return false
	}
	return true
}

func (sb *SwitchBuilder) fail(err error) {
	sb.owner.errs = append(sb.owner.errs, fmt.Errorf("switch %q: %w", sb.draft.name, err))
}

// checkSpelling applies the rules shared by short and long forms.
func checkSpelling(form string) error {
	if form == "" {
		return fmt.Errorf("%w: spelling cannot be empty", ErrInvalidSpelling)
	}
	if strings.HasPrefix(form, ShortPrefix) {
		return fmt.Errorf("%w: do not start a switch with the '-' character", ErrInvalidSpelling)
	}
	return nil
}
