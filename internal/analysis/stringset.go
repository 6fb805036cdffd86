package analysis

import "sort"

// stringSet keeps unique strings in insertion order. It never leaves this
// package; callers only ever see the sorted slice produced by Sorted.
type stringSet struct {
	index map[string]struct{}
	items []string
}

func newStringSet() *stringSet {
	return &stringSet{index: make(map[string]struct{})}
}

// Add inserts values that are not yet present.
func (s *stringSet) Add(values ...string) {
	for _, v := range values {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = struct{}{}
		s.items = append(s.items, v)
	}
}

func (s *stringSet) Len() int {
	return len(s.items)
}

// Ordered returns a copy of the values in insertion order.
func (s *stringSet) Ordered() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Sorted returns a copy of the values sorted ascending. Never nil.
func (s *stringSet) Sorted() []string {
	out := s.Ordered()
	sort.Strings(out)
	return out
}
