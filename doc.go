// Package switchboard provides a declarative grammar for UNIX-style
// command-line switches and a left-to-right parser that turns a flat
// sequence of argument tokens into a structured, validated result.
//
// You describe the switches your program accepts once, on a
// RegistryBuilder, and then Build an immutable Registry from it. The
// Registry can be shared by any number of goroutines; each call to
// Parse produces its own ParseResult and never mutates the Registry.
//
// The grammar supports:
//   - Short switches: -v, and clusters of them: -vh
//   - Long switches: --version
//   - Embedded arguments: -Ifoo, --include=foo
//   - Separate-token arguments: -I foo, --include foo, and -vhI foo
//     where the last letter of a cluster takes the argument
//   - Required and optional arguments, default values, and repeatable
//     switches that accumulate their values
//   - "--" to end switch parsing; everything after it is left over
//
// Parsing stops at the first token that does not start with "-". That
// token, and everything after it, are returned as leftovers.
//
// Example:
//
//	rb := switchboard.NewRegistryBuilder(switchboard.RegistryOpts{})
//	rb.Define("version", "display app version number").
//	    Short("v").
//	    Long("version")
//	rb.Define("include", "add a folder to search within").
//	    Short("I").
//	    Long("include").
//	    RequiredArg("<path>", "path to the folder to search")
//	reg := rb.MustBuild()
//
//	result, err := switchboard.Parse(os.Args, 1, reg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, msg := range result.ValidationErrors() {
//	    fmt.Fprintln(os.Stderr, msg)
//	}
//
// Unknown switches and missing arguments abort the parse and come back
// as errors (see UnknownSwitchError and MissingArgumentError). Values
// that fail an argument's validators do not abort the parse; their
// messages are collected on the ParseResult instead.
//
// Registries can also be declared as JSON documents, see
// LoadRegistryJSON, and a ParseResult can be bound onto a tagged struct
// with ParseResult.Bind.
package switchboard
