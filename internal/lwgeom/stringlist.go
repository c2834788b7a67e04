package lwgeom

// StringList is an append-only, deduplicated list of strings, spec.md
// §4.C14, grounded on original_source/liblwgeom/stringlist.c (used there to
// accumulate unique SRS authority names while walking a geometry tree).
type StringList struct {
	items []string
	seen  map[string]bool
}

// NewStringList returns an empty StringList.
func NewStringList() *StringList {
	return &StringList{seen: make(map[string]bool)}
}

// Add appends s if it has not already been added, returning true if it was
// a new addition.
func (l *StringList) Add(s string) bool {
	if l.seen[s] {
		return false
	}
	l.seen[s] = true
	l.items = append(l.items, s)
	return true
}

// Contains reports whether s has been added.
func (l *StringList) Contains(s string) bool {
	return l.seen[s]
}

// Items returns the list in insertion order. The caller must not mutate the
// returned slice.
func (l *StringList) Items() []string {
	return l.items
}

// Len returns the number of distinct strings added.
func (l *StringList) Len() int {
	return len(l.items)
}
