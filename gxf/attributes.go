package gxf

import (
	"net/url"
	"strings"
	"unicode"
)

// Attributes holds the parsed column-9 mapping. Every key maps to an
// ordered list of one or more values; Get returns the first. Keys keep
// the casing they were written with, and lookups fold case unless the
// line was parsed with CaseSensitive set.
type Attributes struct {
	caseSensitive bool
	order         []string // canonical keys, first-seen order
	display       map[string]string
	values        map[string][]string
}

func newAttributes(caseSensitive bool) *Attributes {
	return &Attributes{
		caseSensitive: caseSensitive,
		display:       make(map[string]string),
		values:        make(map[string][]string),
	}
}

func (a *Attributes) canon(key string) string {
	if a.caseSensitive {
		return key
	}
	return strings.ToLower(key)
}

func (a *Attributes) add(key string, vals []string) {
	c := a.canon(key)
	if _, ok := a.values[c]; !ok {
		a.order = append(a.order, c)
		a.display[c] = key
	}
	a.values[c] = append(a.values[c], vals...)
}

// Get returns the first value recorded for key.
func (a *Attributes) Get(key string) (string, bool) {
	vals := a.values[a.canon(key)]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Values returns every value recorded for key, in input order.
// Duplicates are retained.
func (a *Attributes) Values(key string) []string {
	return a.values[a.canon(key)]
}

// Has reports whether key carries at least one value.
func (a *Attributes) Has(key string) bool {
	return len(a.values[a.canon(key)]) > 0
}

// Len returns the number of distinct keys.
func (a *Attributes) Len() int {
	return len(a.order)
}

// Keys returns the attribute keys in first-seen order, with the casing
// they were first written with.
func (a *Attributes) Keys() []string {
	keys := make([]string, len(a.order))
	for i, c := range a.order {
		keys[i] = a.display[c]
	}
	return keys
}

// parseAttributes turns the raw 9th column into an Attributes mapping.
// Malformed segments are dropped without failing the line; an empty or
// missing column yields an empty mapping.
func parseAttributes(raw string, opts Options) *Attributes {
	attrs := newAttributes(opts.CaseSensitive)
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "." {
		return attrs
	}
	for _, segment := range strings.Split(raw, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		key, val, ok := splitSegment(segment)
		if !ok {
			continue
		}
		vals := splitValues(val, opts.URLDecode)
		if len(vals) == 0 {
			continue
		}
		attrs.add(key, vals)
	}
	return attrs
}

// splitSegment detects the attribute syntax of one ;-separated segment.
// An '=' outside double quotes means GFF3 key=value; otherwise the first
// whitespace run separates a GTF key "value" pair. Surrounding quotes are
// stripped from the value either way, since real files mix the two.
func splitSegment(segment string) (key, val string, ok bool) {
	if i := indexUnquoted(segment, '='); i >= 0 {
		key = strings.TrimSpace(segment[:i])
		val = strings.TrimSpace(segment[i+1:])
	} else {
		i := strings.IndexFunc(segment, unicode.IsSpace)
		if i < 0 {
			return "", "", false
		}
		key = segment[:i]
		val = strings.TrimSpace(segment[i+1:])
	}
	val = strings.Trim(val, `"`)
	if key == "" || val == "" {
		return "", "", false
	}
	return key, val, true
}

// indexUnquoted returns the index of the first c outside double quotes,
// or -1 if none.
func indexUnquoted(s string, c byte) int {
	quoted := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '"':
			quoted = !quoted
		case s[i] == c && !quoted:
			return i
		}
	}
	return -1
}

// splitValues expands GFF3 comma-separated multi-values. Percent-decoding
// happens after all splitting, so encoded delimiters inside a value are
// never mistaken for real ones.
func splitValues(val string, urlDecode bool) []string {
	var out []string
	for _, v := range strings.Split(val, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if urlDecode {
			if dec, err := url.PathUnescape(v); err == nil {
				v = dec
			}
		}
		out = append(out, v)
	}
	return out
}
