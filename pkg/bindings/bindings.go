// Package bindings holds the per-match capture map produced by the engine.
package bindings

import (
	"bytes"
	"encoding/json"
)

// Bindings maps a hole name to its captured text. A name present with a
// nil value denotes an optional hole that was skipped; an absent name
// means the hole was anonymous or never reached. Insertion order is
// preserved so callers that serialize bindings (e.g. NDJSON output) get
// deterministic field order.
type Bindings struct {
	order  []string
	values map[string]*string
}

// New returns an empty Bindings map.
func New() Bindings {
	return Bindings{values: map[string]*string{}}
}

// Clone returns a copy that can be mutated independently of the
// receiver. The engine calls this before binding a new hole on every
// recursive descent so that sibling branches never observe each other's
// captures.
func (b Bindings) Clone() Bindings {
	out := Bindings{
		order:  append([]string(nil), b.order...),
		values: make(map[string]*string, len(b.values)),
	}
	for k, v := range b.values {
		out.values[k] = v
	}
	return out
}

// Set records value as the capture for name, overwriting any earlier
// value (last successful capture wins). A nil value marks an optional
// hole that was skipped.
func (b *Bindings) Set(name string, value *string) {
	if b.values == nil {
		b.values = map[string]*string{}
	}
	if _, exists := b.values[name]; !exists {
		b.order = append(b.order, name)
	}
	b.values[name] = value
}

// SetSkipped records name as bound-but-skipped, unless it is already
// bound (an earlier consuming branch took precedence).
func (b *Bindings) SetSkipped(name string) {
	if _, ok := b.values[name]; ok {
		return
	}
	b.Set(name, nil)
}

// Get returns the capture for name and whether it was present at all.
func (b Bindings) Get(name string) (value *string, ok bool) {
	v, ok := b.values[name]
	return v, ok
}

// Names returns the bound names in insertion order.
func (b Bindings) Names() []string {
	return append([]string(nil), b.order...)
}

// Len reports the number of bound names.
func (b Bindings) Len() int {
	return len(b.values)
}

// ToMap renders the bindings as a plain map, suitable for callers that
// don't care about field order.
func (b Bindings) ToMap() map[string]*string {
	out := make(map[string]*string, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}

// MarshalJSON renders fields in insertion order instead of the
// alphabetical order encoding/json would otherwise impose on a map, so
// NDJSON output is deterministic and matches the order holes appear in
// the pattern.
func (b Bindings) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range b.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(b.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
