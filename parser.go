package switchboard

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// ParserOpts configures a Parser.
type ParserOpts struct {
	// Logger receives debug traces of each parse, and a warning when a
	// parse is aborted. Nil discards them.
	Logger *log.Logger
}

// Parser walks a token sequence from left to right, matching switches
// against a Registry.
//
// A Parser holds no per-parse state, so a single Parser may be used by
// several goroutines at once.
type Parser struct {
	registry *Registry
	logger   *log.Logger
}

func NewParser(reg *Registry, opts ParserOpts) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Parser{
		registry: reg,
		logger:   logger,
	}
}

// Parse parses tokens against reg starting at tokens[start]. It is a
// shorthand for NewParser(reg, ParserOpts{}).Parse(tokens, start).
func Parse(tokens []string, start int, reg *Registry) (*ParseResult, error) {
	return NewParser(reg, ParserOpts{}).Parse(tokens, start)
}

// Parse matches switches in tokens, beginning at tokens[start], which
// is usually 1 when tokens is os.Args. start may equal len(tokens).
//
// Parsing stops after a "--" token, which is consumed, or before the
// first token that does not start with "-". Everything from there to
// the end is returned as leftovers.
//
// Afterwards every argument-taking switch that was not seen but has a
// default value is filled in from that default, and all captured values
// are run through their argument's validators. Validation failures are
// reported by ParseResult.ValidationErrors, not as an error.
//
// An unknown switch fails with *UnknownSwitchError, and a required
// argument with nothing to draw from fails with *MissingArgumentError.
// Either aborts the whole parse: no partial result is returned.
func (p *Parser) Parse(tokens []string, start int) (*ParseResult, error) {
	if p.registry == nil {
		return nil, ErrNilRegistry
	}
	if start < 0 || start > len(tokens) {
		return nil, fmt.Errorf("%w: %d is not within [0, %d]", ErrStartIndexOutOfRange, start, len(tokens))
	}

	p.logger.Debug("parsing command line", "tokens", len(tokens), "start", start)

	result := newParseResult(p.registry)
	i, err := p.parseSwitches(tokens, start, result)
	if err != nil {
		p.logger.Warn("command line rejected", "index", i, "error", err)
		return nil, err
	}

	p.backfillDefaults(result)

	result.index = i
	result.leftovers = slices.Clone(tokens[i:])
	result.validationErrors = validateMatches(result.byOrder)

	p.logger.Debug("parsed command line",
		"matches", len(result.byOrder),
		"leftovers", len(result.leftovers),
		"validationErrors", len(result.validationErrors),
	)
	return result, nil
}

// parseSwitches is the scanning loop. It returns the index of the first
// token that was not consumed.
func (p *Parser) parseSwitches(tokens []string, i int, result *ParseResult) (int, error) {
	var err error
	for i < len(tokens) {
		token := tokens[i]
		switch {
		case token == EndOfSwitches:
			p.logger.Debug("end of switches marker", "index", i)
			return i + 1, nil
		case !strings.HasPrefix(token, ShortPrefix):
			p.logger.Debug("first non-switch token", "index", i, "token", token)
			return i, nil
		case strings.HasPrefix(token, LongPrefix):
			i, err = p.parseLongSwitch(tokens, i, result)
		default:
			i, err = p.parseShortSwitches(tokens, i, result)
		}
		if err != nil {
			return i, err
		}
	}
	return i, nil
}

// parseShortSwitches handles a token holding one or more short
// switches:
//
//	-x       a single switch
//	-xfred   a single switch, with "fred" as its argument
//	-x fred  a single switch, with "fred" as its argument
//	-xyz     three switches
//	-xyz fred  three switches, with "fred" as the argument of z
//
// Only the first letter may take the rest of the token as its argument,
// and only the last letter may take the next token.
func (p *Parser) parseShortSwitches(tokens []string, i int, result *ParseResult) (int, error) {
	letters := []rune(tokens[i])
	last := len(letters) - 1
	next := i + 1

	for j := 1; j <= last; j++ {
		form := string(letters[j])
		def, err := p.registry.LookupShort(form)
		if err != nil {
			return i, err
		}

		label := ShortPrefix + form
		if !def.HasArgument() {
			p.record(result, def, label, BooleanValue, true)
			continue
		}

		switch {
		case j == 1 && j != last:
			// the rest of the token is the argument
			c, err := captureArgument(tokens, i, len(string(letters[:2])), def, label)
			if err != nil {
				return i, err
			}
			p.record(result, def, label, c.value, c.hasValue)
			return next, nil
		case j == last:
			c, err := captureArgument(tokens, i+1, 0, def, label)
			if err != nil {
				return i, err
			}
			p.record(result, def, label, c.value, c.hasValue)
			next += c.consumed
		default:
			// a switch in the middle of a cluster cannot claim the
			// letters after it
			return i, &MissingArgumentError{Switch: label}
		}
	}

	return next, nil
}

// parseLongSwitch handles a token of the form --name, --name=value or
// --name followed by its value in the next token.
func (p *Parser) parseLongSwitch(tokens []string, i int, result *ParseResult) (int, error) {
	body := strings.TrimPrefix(tokens[i], LongPrefix)
	name, _, hasEquals := strings.Cut(body, LongValueSplitter)

	def, err := p.registry.LookupLong(name)
	if err != nil {
		return i, err
	}

	label := LongPrefix + name
	if !def.HasArgument() {
		p.record(result, def, label, BooleanValue, true)
		return i + 1, nil
	}

	if hasEquals {
		offset := len(LongPrefix) + len(name) + len(LongValueSplitter)
		c, err := captureArgument(tokens, i, offset, def, label)
		if err != nil {
			return i, err
		}
		p.record(result, def, label, c.value, c.hasValue)
		return i + 1, nil
	}

	c, err := captureArgument(tokens, i+1, 0, def, label)
	if err != nil {
		return i, err
	}
	p.record(result, def, label, c.value, c.hasValue)
	return i + 1 + c.consumed, nil
}

// argCapture is the outcome of looking for a switch's argument.
type argCapture struct {
	value    string
	hasValue bool
	consumed int // tokens read at the candidate index: 0 or 1
}

// captureArgument reads the argument of def from tokens[k][offset:].
// k may be len(tokens) when the switch was the last token.
//
// An optional argument always takes tokens[k] when it exists, whatever
// it looks like. When it does not exist the default value is used, if
// there is one, and nothing is consumed. A required argument must exist
// and must not be blank.
func captureArgument(tokens []string, k, offset int, def *SwitchDefinition, label string) (argCapture, error) {
	exists := k < len(tokens)

	if def.HasOptionalArgument() {
		if !exists {
			value, ok := def.argument.DefaultValue()
			return argCapture{value: value, hasValue: ok}, nil
		}
		return argCapture{value: tokens[k][offset:], hasValue: true, consumed: 1}, nil
	}

	if !exists {
		return argCapture{}, &MissingArgumentError{Switch: label}
	}
	value := tokens[k][offset:]
	if strings.TrimSpace(value) == "" {
		return argCapture{}, &MissingArgumentError{Switch: label}
	}
	return argCapture{value: value, hasValue: true, consumed: 1}, nil
}

func (p *Parser) record(result *ParseResult, def *SwitchDefinition, label, value string, hasValue bool) {
	m := result.add(def, value, hasValue)
	p.logger.Debug("matched switch",
		"switch", label,
		"name", def.name,
		"value", value,
		"hasValue", hasValue,
		"invokeCount", m.invokeCount,
	)
}

// backfillDefaults adds a match, in definition order, for every switch
// with a default value that the command line did not mention.
func (p *Parser) backfillDefaults(result *ParseResult) {
	for _, def := range p.registry.switches {
		if !def.HasArgument() {
			continue
		}
		value, ok := def.argument.DefaultValue()
		if !ok {
			continue
		}
		if result.addDefault(def, value) {
			p.logger.Debug("using default value", "name", def.name, "value", value)
		}
	}
}
