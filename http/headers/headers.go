package headers

import (
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

// value is a tagged representation of what a header key maps to: a sole
// scalar for keys seen once, or an ordered list for keys seen repeatedly.
// The list, once present, holds ALL the values including the first one.
type value struct {
	single string
	multi  []string
}

type entry struct {
	key string
	value
}

// Table stores request headers. Keys are normalized to lower case on
// insertion and compared case-insensitively on lookup; repeated occurrences
// of a key are preserved in their arrival order and never overwritten.
type Table struct {
	entries []entry
}

func New() *Table {
	return new(Table)
}

// NewPrealloc returns a Table with pre-allocated space for n entries.
func NewPrealloc(n int) *Table {
	return &Table{
		entries: make([]entry, 0, n),
	}
}

// Add stores a single header occurrence. The first occurrence of a key is
// kept as a scalar; the second promotes the entry to an ordered list, and
// any further ones append to it.
func (t *Table) Add(key, val string) *Table {
	key = strings.ToLower(key)

	if e := t.lookup(key); e != nil {
		if e.multi == nil {
			e.multi = []string{e.single, val}
		} else {
			e.multi = append(e.multi, val)
		}

		return t
	}

	t.entries = append(t.entries, entry{key: key, value: value{single: val}})
	return t
}

// Value returns the value stored for the key. For keys that occurred more
// than once, the FIRST received value is returned; use Values to obtain
// all of them.
func (t *Table) Value(key string) (string, bool) {
	e := t.lookup(key)
	if e == nil {
		return "", false
	}

	if e.multi != nil {
		return e.multi[0], true
	}

	return e.single, true
}

// ValueOr returns either the value corresponding to the key or the provided
// fallback.
func (t *Table) ValueOr(key, or string) string {
	if v, found := t.Value(key); found {
		return v
	}

	return or
}

// Values returns all values of the key in their arrival order, or nil if
// the key was never stored.
func (t *Table) Values(key string) []string {
	e := t.lookup(key)
	if e == nil {
		return nil
	}

	if e.multi != nil {
		return e.multi
	}

	return []string{e.single}
}

// Names returns the stored (lowercased) keys in insertion order.
func (t *Table) Names() []string {
	if len(t.entries) == 0 {
		return nil
	}

	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.key
	}

	return names
}

// Has indicates whether the key was stored.
func (t *Table) Has(key string) bool {
	return t.lookup(key) != nil
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) lookup(key string) *entry {
	for i := range t.entries {
		if strcomp.EqualFold(t.entries[i].key, key) {
			return &t.entries[i]
		}
	}

	return nil
}
