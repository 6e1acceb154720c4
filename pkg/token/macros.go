package token

import "regexp"

// RegexMacros is the fixed table of named regex-constrained hole macros.
var RegexMacros = map[string]string{
	"digit": `\d+`,
	"word":  `\w+`,
	"num":   `[-+]?[0-9]+(?:\.[0-9]+)?(?:[eE][-+]?[0-9]+)?`,
}

// StructuralMacros is the fixed table of balanced-delimiter macros.
var StructuralMacros = map[string]StructuralSpec{
	"()":  {Open: '(', Close: ')', InnerOnly: false},
	"[]":  {Open: '[', Close: ']', InnerOnly: false},
	"{}":  {Open: '{', Close: '}', InnerOnly: false},
	"(_)": {Open: '(', Close: ')', InnerOnly: true},
	"[_]": {Open: '[', Close: ']', InnerOnly: true},
	"{_}": {Open: '{', Close: '}', InnerOnly: true},
}

// CompileMacroRegex compiles a named regex macro as a full-match
// expression (anchored at both ends), since the engine always tests
// whole candidate substrings against it. A name not in RegexMacros
// yields a regex that matches only the empty string; callers check
// RegexMacros first.
func CompileMacroRegex(name string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + RegexMacros[name] + `)$`)
}

// IsKnownMacro reports whether name is a regex or structural macro.
func IsKnownMacro(name string) bool {
	if _, ok := RegexMacros[name]; ok {
		return true
	}
	_, ok := StructuralMacros[name]
	return ok
}
