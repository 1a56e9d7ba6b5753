// Package mxstyle builds and parses style strings in the mxGraph dialect.
//
// An mxGraph style is a semicolon-separated list of entries. An entry is
// either a bare token ("group", "rounded") or a key=value pair
// ("fillColor=#dae8fc"). Entry order is significant for rendering, so the
// parser and builder both preserve it.
//
// # Usage
//
//	s := mxstyle.Parse("rounded=1;fillColor=#dae8fc")
//	s.Set("strokeColor", "#6c8ebf")
//	s.AddToken("shadow")
//	style := s.String() // "rounded=1;fillColor=#dae8fc;strokeColor=#6c8ebf;shadow;"
package mxstyle

import "strings"

// entry is one style element: a bare token (Value == "") or a key=value pair.
type entry struct {
	Key   string
	Value string
	bare  bool
}

// Style is an ordered set of style entries.
// The zero value is an empty style ready to use.
type Style struct {
	entries []entry
}

// Parse splits an mxGraph style string into an ordered Style.
// Empty segments are dropped; everything else is preserved verbatim.
func Parse(s string) *Style {
	st := &Style{}
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if k, v, ok := strings.Cut(part, "="); ok {
			st.entries = append(st.entries, entry{Key: k, Value: v})
		} else {
			st.entries = append(st.entries, entry{Key: part, bare: true})
		}
	}
	return st
}

// String renders the style back to its string form.
// Every entry is terminated with a semicolon, matching the format the
// desktop application writes.
func (s *Style) String() string {
	if len(s.entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range s.entries {
		b.WriteString(e.Key)
		if !e.bare {
			b.WriteByte('=')
			b.WriteString(e.Value)
		}
		b.WriteByte(';')
	}
	return b.String()
}

// Get returns the value for key and whether it is present.
// Bare tokens report present with an empty value.
func (s *Style) Get(key string) (string, bool) {
	for _, e := range s.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Set adds or replaces a key=value entry, keeping the original position
// when the key already exists.
func (s *Style) Set(key, value string) *Style {
	for i, e := range s.entries {
		if e.Key == key {
			s.entries[i] = entry{Key: key, Value: value}
			return s
		}
	}
	s.entries = append(s.entries, entry{Key: key, Value: value})
	return s
}

// HasToken reports whether the bare token is present.
func (s *Style) HasToken(token string) bool {
	for _, e := range s.entries {
		if e.bare && e.Key == token {
			return true
		}
	}
	return false
}

// AddToken appends a bare token if it is not already present.
// Repeated calls leave exactly one occurrence.
func (s *Style) AddToken(token string) *Style {
	if s.HasToken(token) {
		return s
	}
	s.entries = append(s.entries, entry{Key: token, bare: true})
	return s
}

// Remove deletes the entry (token or pair) with the given key, if present.
func (s *Style) Remove(key string) *Style {
	for i, e := range s.entries {
		if e.Key == key {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return s
		}
	}
	return s
}

// Len returns the number of entries.
func (s *Style) Len() int { return len(s.entries) }

// EnsureToken returns style with token present exactly once.
// It is a convenience for callers that work with raw style strings.
func EnsureToken(style, token string) string {
	s := Parse(style)
	s.AddToken(token)
	return s.String()
}
