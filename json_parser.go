package switchboard

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	ErrInvalidRegistryDocument = errors.New("invalid registry document")
	ErrUnknownValidator        = errors.New("unknown validator name")
)

// LoadOpts configures how a registry document is turned into a Registry.
type LoadOpts struct {
	RegistryOpts
	// Validators resolves the names listed under an argument's
	// "validators" key.
	Validators map[string]Validator
}

// LoadRegistryJSON builds a Registry from a JSON document of the form:
//
//	{"switches": [
//	  {"name": "include", "description": "add a folder to search within",
//	   "longDescription": "...",
//	   "short": ["I"], "long": ["include"],
//	   "repeatable": false, "actsAsCommand": false,
//	   "arg": {"name": "<path>", "description": "path to the folder",
//	           "required": true, "default": "/tmp", "implicit": "...",
//	           "validators": ["nonblank"]}}
//	]}
//
// "short" and "long" take a single string or a list of strings. The
// switches are defined in document order, through a RegistryBuilder, so
// every definition rule still applies.
func LoadRegistryJSON(data []byte, opts LoadOpts) (*Registry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidRegistryDocument)
	}
	return loadRegistry(gjson.ParseBytes(data), opts)
}

// LoadRegistryJSONString is LoadRegistryJSON for a string document.
func LoadRegistryJSONString(doc string, opts LoadOpts) (*Registry, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidRegistryDocument)
	}
	return loadRegistry(gjson.Parse(doc), opts)
}

func loadRegistry(doc gjson.Result, opts LoadOpts) (*Registry, error) {
	switches := doc.Get("switches")
	if !switches.IsArray() {
		return nil, fmt.Errorf("%w: \"switches\" must be an array", ErrInvalidRegistryDocument)
	}

	rb := NewRegistryBuilder(opts.RegistryOpts)
	var errs []error
	for i, sw := range switches.Array() {
		if err := defineFromJSON(rb, sw, opts); err != nil {
			errs = append(errs, fmt.Errorf("switches[%d]: %w", i, err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return rb.Build()
}

func defineFromJSON(rb *RegistryBuilder, sw gjson.Result, opts LoadOpts) error {
	if !sw.IsObject() {
		return fmt.Errorf("%w: switch must be an object", ErrInvalidRegistryDocument)
	}
	name := sw.Get("name")
	if name.Type != gjson.String {
		return fmt.Errorf("%w: switch name must be a string", ErrInvalidRegistryDocument)
	}

	sb := rb.Define(name.String(), sw.Get("description").String()).
		Short(stringList(sw.Get("short"))...).
		Long(stringList(sw.Get("long"))...)

	if desc, ok := present(sw.Get("longDescription")); ok {
		sb.LongDescription(desc.String())
	}
	if sw.Get("repeatable").Bool() {
		sb.Repeatable()
	}
	if sw.Get("actsAsCommand").Bool() {
		sb.ActsAsCommand()
	}

	arg, ok := present(sw.Get("arg"))
	if !ok {
		return nil
	}
	if !arg.IsObject() {
		return fmt.Errorf("%w: arg must be an object", ErrInvalidRegistryDocument)
	}

	argName, argDesc := arg.Get("name").String(), arg.Get("description").String()
	if arg.Get("required").Bool() {
		sb.RequiredArg(argName, argDesc)
	} else {
		sb.OptionalArg(argName, argDesc)
	}
	if def, ok := present(arg.Get("default")); ok {
		sb.DefaultValue(def.String())
	}
	if implicit, ok := present(arg.Get("implicit")); ok {
		sb.ImplicitValue(implicit.String())
	}
	for _, vname := range stringList(arg.Get("validators")) {
		v, ok := opts.Validators[vname]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownValidator, vname)
		}
		sb.Validators(v)
	}
	return nil
}

// present treats JSON null like a missing key.
func present(r gjson.Result) (gjson.Result, bool) {
	return r, r.Exists() && r.Type != gjson.Null
}

// stringList reads a key holding either one string or a list of them.
func stringList(r gjson.Result) []string {
	if _, ok := present(r); !ok {
		return nil
	}
	var out []string
	for _, item := range r.Array() {
		out = append(out, item.String())
	}
	return out
}
