// Package compiler turns a pattern string into an ordered token sequence.
package compiler

import (
	"regexp"
	"strings"

	"github.com/bardo84/combygo/pkg/token"
)

// Compile parses pattern into an ordered sequence of literal and hole
// tokens. An empty pattern compiles to an empty token list, which the
// driver treats as "never matches" rather than the trivial match at
// every position.
//
// Compile errors (unknown macro, invalid regex) are returned as *ErrUnknownMacro
// or *ErrInvalidRegex.
func Compile(pattern string) ([]token.Token, error) {
	pattern = strings.ReplaceAll(pattern, "...", ":[_]")

	var tokens []token.Token
	pos := 0

	for {
		rest := pattern[pos:]
		openIdx := strings.Index(rest, ":[")
		if openIdx < 0 {
			break
		}
		start := pos + openIdx
		afterOpen := start + 2
		closeRel := strings.IndexByte(pattern[afterOpen:], ']')
		if closeRel < 0 {
			// Unterminated hole opener: the rest of the pattern is literal.
			break
		}
		closeIdx := afterOpen + closeRel

		if start > pos {
			appendLiteral(&tokens, pattern[pos:start])
		}

		content := pattern[afterOpen:closeIdx]
		hole, err := parseHole(content)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token.Token{Hole: hole})

		pos = closeIdx + 1
	}

	if pos < len(pattern) {
		appendLiteral(&tokens, pattern[pos:])
	}

	return tokens, nil
}

// appendLiteral adds a literal token for text, eliding it entirely if
// text is empty (see DESIGN.md, Open Question 1).
func appendLiteral(tokens *[]token.Token, text string) {
	if text == "" {
		return
	}
	*tokens = append(*tokens, token.Token{Literal: buildLiteral(text)})
}

// buildLiteral compiles text into a matcher anchored at the start of
// whatever remainder it is tested against: runs of ASCII spaces become
// "\s*", every other rune matches itself, with regex metacharacters
// neutralised via regexp.QuoteMeta.
func buildLiteral(text string) *token.Literal {
	var b strings.Builder
	b.WriteString("^(?:")

	i := 0
	for i < len(text) {
		if text[i] == ' ' {
			j := i
			for j < len(text) && text[j] == ' ' {
				j++
			}
			b.WriteString(`\s*`)
			i = j
			continue
		}
		b.WriteString(regexp.QuoteMeta(text[i : i+1]))
		i++
	}
	b.WriteString(")")

	return &token.Literal{Text: text, Regex: regexp.MustCompile(b.String())}
}

// parseHole parses the interior of a :[...] hole (with the surrounding
// :[ ] already stripped).
func parseHole(content string) (*token.Hole, error) {
	optional := strings.HasSuffix(content, "?")
	if optional {
		content = content[:len(content)-1]
	}

	tildeIdx := strings.IndexByte(content, '~')
	colonIdx := strings.IndexByte(content, ':')

	switch {
	case tildeIdx >= 0 && (colonIdx < 0 || tildeIdx < colonIdx):
		name := normalizeName(content[:tildeIdx])
		pattern := content[tildeIdx+1:]
		re, err := regexp.Compile("^(?:" + pattern + ")$")
		if err != nil {
			return nil, &ErrInvalidRegex{Pattern: pattern, Cause: err}
		}
		return &token.Hole{
			Name:     name,
			Kind:     token.UserRegex,
			Optional: optional,
			Regex:    re,
		}, nil

	case colonIdx >= 0:
		name := normalizeName(content[:colonIdx])
		macro := content[colonIdx+1:]

		if _, ok := token.RegexMacros[macro]; ok {
			return &token.Hole{
				Name:       name,
				Kind:       token.RegexMacro,
				Optional:   optional,
				MacroRegex: token.CompileMacroRegex(macro),
			}, nil
		}
		if spec, ok := token.StructuralMacros[macro]; ok {
			return &token.Hole{
				Name:       name,
				Kind:       token.Structural,
				Optional:   optional,
				Structural: spec,
			}, nil
		}
		return nil, &ErrUnknownMacro{Macro: macro}

	default:
		return &token.Hole{
			Name:     normalizeName(content),
			Kind:     token.Wildcard,
			Optional: optional,
		}, nil
	}
}

// normalizeName reduces an empty or "_" left-hand side to the
// anonymous-hole name ("").
func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "_" {
		return ""
	}
	return s
}
