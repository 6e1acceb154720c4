// Package comby implements the Driver: the two public entry points,
// find_all and find_first, described in spec.md §6. It orchestrates the
// compiler, the match engine, and the template renderer, advancing the
// search cursor across a whole-text match loop and splicing rewrites
// for replacement mode.
package comby

import (
	"github.com/pkg/errors"

	"github.com/bardo84/combygo/pkg/bindings"
	"github.com/bardo84/combygo/pkg/compiler"
	"github.com/bardo84/combygo/pkg/engine"
	"github.com/bardo84/combygo/pkg/render"
	"github.com/bardo84/combygo/pkg/token"
)

// Result carries the outcome of a query or replace call. Exactly one of
// Matches or Text is meaningful, depending on whether a replacement
// template was supplied.
type Result struct {
	Matches []bindings.Bindings
	Text    string
}

// FindAll matches pattern against text as many times as it occurs. If
// replacement is nil, Result.Matches holds one Bindings per match (in
// order). If replacement is non-nil, Result.Text holds the fully
// rewritten text.
func FindAll(text, pattern string, replacement *string) (Result, error) {
	tokens, err := compiler.Compile(pattern)
	if err != nil {
		return Result{}, errors.Wrap(err, "compile pattern")
	}

	if len(tokens) == 0 {
		return emptyPatternResult(text, replacement), nil
	}

	if replacement == nil {
		return Result{Matches: queryAll(text, tokens)}, nil
	}
	return Result{Text: replaceAll(text, tokens, *replacement)}, nil
}

// FindFirst matches pattern against text once. If replacement is nil,
// Result.Matches holds zero or one Bindings. If replacement is
// non-nil, Result.Text holds text with at most one rewrite applied.
func FindFirst(text, pattern string, replacement *string) (Result, error) {
	tokens, err := compiler.Compile(pattern)
	if err != nil {
		return Result{}, errors.Wrap(err, "compile pattern")
	}

	if len(tokens) == 0 {
		return emptyPatternResult(text, replacement), nil
	}

	m, ok := engine.FindFirst(text, tokens)

	if replacement == nil {
		if !ok {
			return Result{Matches: []bindings.Bindings{}}, nil
		}
		return Result{Matches: []bindings.Bindings{m.Bindings}}, nil
	}

	if !ok {
		return Result{Text: text}, nil
	}
	rendered := render.Render(*replacement, m.Bindings)
	return Result{Text: text[:m.Start] + rendered + text[m.End:]}, nil
}

// emptyPatternResult implements the empty-pattern policy (§4.5): query
// modes return empty results, replace modes return the input unchanged
// — the match loop is never entered.
func emptyPatternResult(text string, replacement *string) Result {
	if replacement == nil {
		return Result{Matches: []bindings.Bindings{}}
	}
	return Result{Text: text}
}

// queryAll repeatedly searches the unconsumed suffix of text, advancing
// the cursor to each match's absolute end and guarding against
// zero-width matches looping forever.
func queryAll(text string, tokens []token.Token) []bindings.Bindings {
	var out []bindings.Bindings
	offset := 0

	for offset <= len(text) {
		m, ok := engine.FindFirst(text[offset:], tokens)
		if !ok {
			break
		}
		out = append(out, m.Bindings)

		offset += m.End
		if m.End == m.Start {
			offset++
		}
	}

	if out == nil {
		out = []bindings.Bindings{}
	}
	return out
}

// replaceAll repeatedly searches the unconsumed suffix of result,
// splicing each rendered replacement in and resuming the search
// immediately after it.
func replaceAll(text string, tokens []token.Token, replacement string) string {
	result := text
	offset := 0

	for offset <= len(result) {
		m, ok := engine.FindFirst(result[offset:], tokens)
		if !ok {
			break
		}

		start := offset + m.Start
		end := offset + m.End
		rendered := render.Render(replacement, m.Bindings)

		result = result[:start] + rendered + result[end:]
		offset = start + len(rendered)
	}

	return result
}
