package render

import (
	"path"
	"strconv"
	"strings"
)

// opFunc transforms a captured string, or returns an error if the
// operation cannot apply (e.g. inc on a non-numeric capture). A failing
// op causes the whole placeholder to be left verbatim (§4.4).
type opFunc func(string) (string, error)

// Ops is the fixed replacement-operation table (§6, Built-in macro
// table / Replacement operations table).
var Ops = map[string]opFunc{
	"upper": func(s string) (string, error) { return strings.ToUpper(s), nil },
	"lower": func(s string) (string, error) { return strings.ToLower(s), nil },
	"capitalize": func(s string) (string, error) {
		if s == "" {
			return s, nil
		}
		r := []rune(s)
		return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:])), nil
	},
	"strip": func(s string) (string, error) { return strings.TrimSpace(s), nil },
	"inc": func(s string) (string, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n + 1), nil
	},
	"dec": func(s string) (string, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n - 1), nil
	},
	"filename": func(s string) (string, error) { return path.Base(s), nil },
	"basename": func(s string) (string, error) {
		base := path.Base(s)
		ext := path.Ext(base)
		return strings.TrimSuffix(base, ext), nil
	},
	"extension": func(s string) (string, error) {
		ext := path.Ext(s)
		return strings.TrimPrefix(ext, "."), nil
	},
}
