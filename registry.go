package switchboard

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// RegistryBuilder
///////////////////////////////////////////////////////////////////////////////

// RegistryOpts configures how a RegistryBuilder validates the switches
// it is given.
type RegistryOpts struct {
	// RejectSpellingCollisions makes Build fail when two different
	// switches claim the same short or long spelling. When false, the
	// switch defined last wins the spelling.
	RejectSpellingCollisions bool
}

// RegistryBuilder collects switch definitions and turns them into an
// immutable Registry.
//
// Definition mistakes are not reported at the call site, so that
// definitions can be chained. They accumulate on the builder and are
// all returned, joined, by Build.
type RegistryBuilder struct {
	opts     RegistryOpts
	builders []*SwitchBuilder
	names    map[string]struct{}
	errs     []error
}

func NewRegistryBuilder(opts RegistryOpts) *RegistryBuilder {
	return &RegistryBuilder{
		opts:  opts,
		names: make(map[string]struct{}),
	}
}

// Define adds a new switch called name and returns a builder to
// configure it.
//
// Defining a second switch under a name that is already taken records a
// *DuplicateNameError, and the returned builder is not attached to the
// registry: whatever is configured on it is discarded.
func (rb *RegistryBuilder) Define(name, description string) *SwitchBuilder {
	sb := &SwitchBuilder{
		owner: rb,
		draft: &SwitchDefinition{name: name, description: description},
	}

	if name == "" {
		rb.errs = append(rb.errs, fmt.Errorf("%w: switch name cannot be empty", ErrInvalidSpelling))
		return sb
	}
	if _, exists := rb.names[name]; exists {
		rb.errs = append(rb.errs, &DuplicateNameError{Name: name})
		return sb
	}

	rb.names[name] = struct{}{}
	rb.builders = append(rb.builders, sb)
	return sb
}

// Err returns every definition error recorded so far, or nil.
func (rb *RegistryBuilder) Err() error {
	return errors.Join(rb.errs...)
}

// Build freezes the switches defined so far into a Registry and derives
// its lookup indices. The builder may keep being used afterwards; that
// never changes a Registry it already returned.
func (rb *RegistryBuilder) Build() (*Registry, error) {
	if err := rb.Err(); err != nil {
		return nil, err
	}

	reg := &Registry{
		switches:    make([]*SwitchDefinition, 0, len(rb.builders)),
		byName:      make(map[string]*SwitchDefinition, len(rb.builders)),
		byShortForm: make(map[string]*SwitchDefinition),
		byLongForm:  make(map[string]*SwitchDefinition),
	}

	var errs []error
	for _, sb := range rb.builders {
		def := sb.draft.clone()
		reg.switches = append(reg.switches, def)
		reg.byName[def.name] = def

		for _, form := range def.shortForms {
			if prev, ok := reg.byShortForm[form]; ok && rb.opts.RejectSpellingCollisions {
				errs = append(errs, fmt.Errorf("%w: %s%s is claimed by %q and %q",
					ErrSpellingCollision, ShortPrefix, form, prev.name, def.name))
			}
			reg.byShortForm[form] = def
		}
		for _, form := range def.longForms {
			if prev, ok := reg.byLongForm[form]; ok && rb.opts.RejectSpellingCollisions {
				errs = append(errs, fmt.Errorf("%w: %s%s is claimed by %q and %q",
					ErrSpellingCollision, LongPrefix, form, prev.name, def.name))
			}
			reg.byLongForm[form] = def
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return reg, nil
}

// MustBuild is like Build but panics on error. It is meant for
// registries declared in code, where an error is a programming mistake.
func (rb *RegistryBuilder) MustBuild() *Registry {
	reg, err := rb.Build()
	if err != nil {
		panic(fmt.Sprintf("switchboard: failed to build registry: %v", err))
	}
	return reg
}

///////////////////////////////////////////////////////////////////////////////
// Registry
///////////////////////////////////////////////////////////////////////////////

// Registry is the immutable set of switches a program accepts, with
// lookup indices by name, short spelling and long spelling.
//
// A Registry is safe for concurrent use.
type Registry struct {
	switches    []*SwitchDefinition // definition order
	byName      map[string]*SwitchDefinition
	byShortForm map[string]*SwitchDefinition
	byLongForm  map[string]*SwitchDefinition
}

// Switches returns the definitions in the order they were defined.
func (reg *Registry) Switches() []*SwitchDefinition {
	return slices.Clone(reg.switches)
}

func (reg *Registry) Len() int { return len(reg.switches) }

func (reg *Registry) HasName(name string) bool {
	_, ok := reg.byName[name]
	return ok
}

// HasShortForm reports whether a switch answers to -form.
func (reg *Registry) HasShortForm(form string) bool {
	_, ok := reg.byShortForm[form]
	return ok
}

// HasLongForm reports whether a switch answers to --form.
func (reg *Registry) HasLongForm(form string) bool {
	_, ok := reg.byLongForm[form]
	return ok
}

func (reg *Registry) LookupByName(name string) (*SwitchDefinition, error) {
	return lookup(reg.byName, name)
}

func (reg *Registry) LookupShort(form string) (*SwitchDefinition, error) {
	return lookup(reg.byShortForm, form)
}

func (reg *Registry) LookupLong(form string) (*SwitchDefinition, error) {
	return lookup(reg.byLongForm, form)
}

func lookup(index map[string]*SwitchDefinition, key string) (*SwitchDefinition, error) {
	if def, ok := index[key]; ok {
		return def, nil
	}
	return nil, &UnknownSwitchError{Switch: key}
}

// DefaultValues maps every switch name to its argument's default value.
// The value is nil for switches without an argument or without a
// default.
func (reg *Registry) DefaultValues() map[string]*string {
	defaults := make(map[string]*string, len(reg.switches))
	for _, def := range reg.switches {
		defaults[def.name] = nil
		if !def.HasArgument() {
			continue
		}
		if value, ok := def.argument.DefaultValue(); ok {
			defaults[def.name] = &value
		}
	}
	return defaults
}

///////////////////////////////////////////////////////////////////////////////
// Display grouping
///////////////////////////////////////////////////////////////////////////////

// CommandFilter selects switches by their acts-as-command flag.
type CommandFilter int

const (
	// AllSwitches applies no filtering.
	AllSwitches CommandFilter = iota
	// PlainSwitchesOnly drops switches flagged FlagActsAsCommand.
	PlainSwitchesOnly
	// CommandSwitchesOnly keeps only switches flagged FlagActsAsCommand.
	CommandSwitchesOnly
)

func (cf CommandFilter) keep(def *SwitchDefinition) bool {
	switch cf {
	case PlainSwitchesOnly:
		return !def.ActsAsCommand()
	case CommandSwitchesOnly:
		return def.ActsAsCommand()
	default:
		return true
	}
}

// DisplayEntry pairs one spelling with the switch that owns it.
type DisplayEntry struct {
	Spelling string
	Switch   *SwitchDefinition
}

// DisplayGroups is the registry arranged for rendering help text.
//
// The four split groups hold bare spellings ("v", "version") sorted
// ascending. All holds dashed spellings ("-v", "--version"): every
// short form sorted, then every long form sorted.
type DisplayGroups struct {
	ShortWithArg    []DisplayEntry
	ShortWithoutArg []DisplayEntry
	LongWithArg     []DisplayEntry
	LongWithoutArg  []DisplayEntry
	All             []DisplayEntry
}

// DisplayGrouping arranges the switches that pass filter for help
// rendering. The parser does not use it.
func (reg *Registry) DisplayGrouping(filter CommandFilter) DisplayGroups {
	var (
		shortWithArg    = map[string]*SwitchDefinition{}
		shortWithoutArg = map[string]*SwitchDefinition{}
		longWithArg     = map[string]*SwitchDefinition{}
		longWithoutArg  = map[string]*SwitchDefinition{}
		allShort        = map[string]*SwitchDefinition{}
		allLong         = map[string]*SwitchDefinition{}
	)

	for _, def := range reg.switches {
		if !filter.keep(def) {
			continue
		}
		for _, form := range def.shortForms {
			allShort[ShortPrefix+form] = def
			if def.HasArgument() {
				shortWithArg[form] = def
			} else {
				shortWithoutArg[form] = def
			}
		}
		for _, form := range def.longForms {
			allLong[LongPrefix+form] = def
			if def.HasArgument() {
				longWithArg[form] = def
			} else {
				longWithoutArg[form] = def
			}
		}
	}

	return DisplayGroups{
		ShortWithArg:    sortedEntries(shortWithArg),
		ShortWithoutArg: sortedEntries(shortWithoutArg),
		LongWithArg:     sortedEntries(longWithArg),
		LongWithoutArg:  sortedEntries(longWithoutArg),
		All:             append(sortedEntries(allShort), sortedEntries(allLong)...),
	}
}

func sortedEntries(m map[string]*SwitchDefinition) []DisplayEntry {
	entries := make([]DisplayEntry, 0, len(m))
	for spelling, def := range m {
		entries = append(entries, DisplayEntry{Spelling: spelling, Switch: def})
	}
	slices.SortFunc(entries, func(a, b DisplayEntry) int {
		return strings.Compare(a.Spelling, b.Spelling)
	})
	return entries
}
