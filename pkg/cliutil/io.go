// Package cliutil holds small file/stdin reading and output-formatting
// helpers shared by the CLI entry point. Grounded on the teacher's
// pkg/handler/load_config.go (plain ioutil.ReadFile, wrapped errors
// rather than panics at this layer).
package cliutil

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/bardo84/combygo/pkg/bindings"
)

// ReadInput reads the input text from path, or from stdin when path is
// empty or "-".
func ReadInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading file %s", path)
	}
	return string(data), nil
}

// ReadFileOrInline returns the contents of path when it is non-empty,
// overriding inline entirely (file flags take precedence over the
// positional argument, never merge with it — SPEC_FULL.md supplemented
// feature 2).
func ReadFileOrInline(path, inline string) (string, error) {
	if path == "" {
		return inline, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading file %s", path)
	}
	return string(data), nil
}

// FormatNDJSON renders one compact JSON object per line, matching
// bindings' insertion order (see pkg/bindings.MarshalJSON). An empty
// slice renders as an empty string, not "[]" or a blank line.
func FormatNDJSON(matches []bindings.Bindings) (string, error) {
	if len(matches) == 0 {
		return "", nil
	}
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		data, err := json.Marshal(m)
		if err != nil {
			return "", errors.Wrap(err, "encoding match")
		}
		lines = append(lines, string(data))
	}
	return strings.Join(lines, "\n"), nil
}
