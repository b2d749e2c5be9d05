package aircon

import (
	"strconv"
	"strings"
)

// Params is an insertion-ordered set of wire parameters.
//
// Keys and values are kept as the raw strings the device sent; numeric
// interpretation happens only in the layer above. A key set twice keeps its
// original position and takes the newest value.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams creates an empty parameter set
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Len returns the number of keys
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the keys in insertion order
func (p *Params) Keys() []string {
	if p.Len() == 0 {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Get returns the value for key, or "" when absent
func (p *Params) Get(key string) string {
	v, _ := p.Lookup(key)
	return v
}

// Lookup returns the value for key and whether it was present
func (p *Params) Lookup(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present
func (p *Params) Has(key string) bool {
	_, ok := p.Lookup(key)
	return ok
}

// Set stores value under key
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Merge copies every key of other over p
func (p *Params) Merge(other *Params) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		p.Set(k, other.values[k])
	}
}

// Clone returns an independent copy
func (p *Params) Clone() *Params {
	c := NewParams()
	c.Merge(p)
	return c
}

// Float parses the value for key as a float64.
// Returns false when the key is absent or not a number.
func (p *Params) Float(key string) (float64, bool) {
	v, ok := p.Lookup(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Map returns the parameters as a plain map
func (p *Params) Map() map[string]string {
	m := make(map[string]string, p.Len())
	if p == nil {
		return m
	}
	for k, v := range p.values {
		m[k] = v
	}
	return m
}

// String renders the parameters back into the device's response format
func (p *Params) String() string {
	if p == nil {
		return ""
	}
	parts := make([]string, 0, len(p.keys))
	for _, k := range p.keys {
		parts = append(parts, k+"="+p.values[k])
	}
	return strings.Join(parts, ",")
}
