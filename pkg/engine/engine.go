// Package engine implements the backtracking matcher that walks a
// compiled token sequence against input text.
package engine

import (
	"github.com/bardo84/combygo/pkg/bindings"
	"github.com/bardo84/combygo/pkg/scanner"
	"github.com/bardo84/combygo/pkg/token"
)

// Match is a successful match: its span and the bindings captured along
// the way.
type Match struct {
	Start, End int
	Bindings   bindings.Bindings
}

// FindFirst tries every anchor position from 0 up to and including
// len(text) and returns the first successful match of tokens, trying
// match_at at each anchor in order. An empty token list matches
// trivially (zero width at anchor 0); the driver treats an empty
// pattern as a no-op and does not call in here with one.
func FindFirst(text string, tokens []token.Token) (Match, bool) {
	for anchor := 0; anchor <= len(text); anchor++ {
		end, b, ok := matchAt(text, tokens, 0, anchor, bindings.New())
		if ok {
			return Match{Start: anchor, End: end, Bindings: b}, true
		}
	}
	return Match{}, false
}

// matchAt recurses over tokens starting at token index ti and text
// index i, given the bindings accumulated so far. It returns the text
// index reached at a full match, the bindings produced, and whether the
// branch succeeded.
func matchAt(text string, tokens []token.Token, ti, i int, b bindings.Bindings) (int, bindings.Bindings, bool) {
	if ti == len(tokens) {
		return i, b, true
	}

	tok := tokens[ti]

	if tok.IsLiteral() {
		loc := tok.Literal.Regex.FindStringIndex(text[i:])
		if loc == nil {
			return i, b, false
		}
		return matchAt(text, tokens, ti+1, i+loc[1], b)
	}

	return matchHole(text, tokens, ti, i, b)
}

func matchHole(text string, tokens []token.Token, ti, i int, b bindings.Bindings) (int, bindings.Bindings, bool) {
	hole := tokens[ti].Hole

	switch hole.Kind {
	case token.Structural:
		// No optional-skip fallback here: a structural hole commits to
		// its scan. If the delimiter isn't there, or the scan succeeds
		// but the rest of the pattern doesn't, the branch fails outright
		// — optionality only ever lets a constrained/wildcard hole back
		// off to consuming nothing, never a structural one.
		end, captured, ok := scanner.Scan(text, i, hole.Structural.Open, hole.Structural.Close, hole.Structural.InnerOnly)
		if !ok {
			return i, b, false
		}
		next := b.Clone()
		if hole.Name != "" {
			next.Set(hole.Name, &captured)
		}
		return matchAt(text, tokens, ti+1, end, next)

	case token.RegexMacro, token.UserRegex:
		// Greedy-first: longest candidate down to the minimum of one
		// character, so constrained holes eat as much as their class
		// allows before backing off.
		for end := len(text); end > i; end-- {
			candidate := text[i:end]
			if !constraintMatches(hole, candidate) {
				continue
			}
			next := b.Clone()
			if hole.Name != "" {
				next.Set(hole.Name, &candidate)
			}
			if end2, b2, ok2 := matchAt(text, tokens, ti+1, end, next); ok2 {
				return end2, b2, true
			}
		}
		return tryOptionalSkip(text, tokens, ti, i, b, hole)

	default: // token.Wildcard
		// Non-greedy: shortest candidate first, empty allowed, to avoid
		// combinatorial blow-up on patterns with many wildcards.
		for end := i; end <= len(text); end++ {
			candidate := text[i:end]
			next := b.Clone()
			if hole.Name != "" {
				next.Set(hole.Name, &candidate)
			}
			if end2, b2, ok2 := matchAt(text, tokens, ti+1, end, next); ok2 {
				return end2, b2, true
			}
		}
		return tryOptionalSkip(text, tokens, ti, i, b, hole)
	}
}

func constraintMatches(hole *token.Hole, candidate string) bool {
	if hole.Kind == token.RegexMacro {
		return hole.MacroRegex.MatchString(candidate)
	}
	return hole.Regex.MatchString(candidate)
}

// tryOptionalSkip is the fallback for an optional hole that could not
// consume anything leading to a full match: it is skipped entirely,
// recording a skipped binding if named and not already bound.
func tryOptionalSkip(text string, tokens []token.Token, ti, i int, b bindings.Bindings, hole *token.Hole) (int, bindings.Bindings, bool) {
	if !hole.Optional {
		return i, b, false
	}
	next := b.Clone()
	if hole.Name != "" {
		next.SetSkipped(hole.Name)
	}
	return matchAt(text, tokens, ti+1, i, next)
}
