// Package render substitutes :[name.op1.op2] placeholders in a
// replacement template using a bindings map and the fixed operation
// table in ops.go.
package render

import (
	"regexp"
	"strings"

	"github.com/bardo84/combygo/pkg/bindings"
)

var placeholderRe = regexp.MustCompile(`:\[([^\]]*)\]`)

// Render substitutes every :[...] placeholder in template. A
// placeholder is left verbatim (including its :[ ] delimiters) when:
// its content is empty, its capture name is absent from b or bound to
// none, or any chained operation is unknown or fails. No placeholder is
// ever partially rewritten.
func Render(template string, b bindings.Bindings) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		content := m[2 : len(m)-1]
		if content == "" {
			return m
		}

		parts := strings.Split(content, ".")
		name, ops := parts[0], parts[1:]

		value, ok := b.Get(name)
		if !ok || value == nil {
			return m
		}

		out := *value
		for _, opName := range ops {
			fn, known := Ops[opName]
			if !known {
				return m
			}
			next, err := fn(out)
			if err != nil {
				return m
			}
			out = next
		}
		return out
	})
}
