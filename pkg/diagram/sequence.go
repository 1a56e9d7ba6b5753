package diagram

import (
	"strconv"
	"strings"
)

// sequence issues monotonically increasing identifiers within one
// namespace. Identifiers are the prefix followed by a decimal counter.
// Cell sequences start at 2 because "0" and "1" are reserved for the
// interchange format's root and default-layer slots.
type sequence struct {
	prefix string
	next   uint64
}

func newSequence(prefix string, seed uint64) *sequence {
	return &sequence{prefix: prefix, next: seed}
}

// Next returns a previously unused identifier and advances the counter.
func (s *sequence) Next() string {
	id := s.prefix + strconv.FormatUint(s.next, 10)
	s.next++
	return id
}

// Advance bumps the counter past id's numeric suffix so future identifiers
// never collide with it. Identifiers without the prefix or without a
// numeric suffix are ignored.
func (s *sequence) Advance(id string) {
	rest, ok := strings.CutPrefix(id, s.prefix)
	if !ok {
		return
	}
	n, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return
	}
	if n >= s.next {
		s.next = n + 1
	}
}

// clone returns an independent copy. Batch dry runs plan identifiers on a
// clone so a validation pass never consumes real ones.
func (s *sequence) clone() *sequence {
	cp := *s
	return &cp
}
