package registry

// ── Iterator ──────────────────────────────────────────────────────────────────

// Iterator is a forward cursor over a registry's (key, resolved value)
// pairs in insertion order. Values are resolved through Get, so a
// factory-bound key runs its builder once per pass.
//
//	for it := r.Iter(); it.Next(); {
//	    fmt.Println(it.Key(), it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
//
// The key order is snapshotted when the iterator is created (or rewound);
// adding or removing keys mid-pass is unsupported. A key removed mid-pass
// surfaces as a *NotFoundError from Err.
type Iterator struct {
	r    *Registry
	keys []string
	pos  int

	key string
	val any
	err error
}

// Iter returns a new iterator positioned before the first entry.
func (r *Registry) Iter() *Iterator {
	it := &Iterator{r: r}
	it.Rewind()
	return it
}

// Next advances to the next entry, resolving its value. It returns false
// when the pass is exhausted or a resolution failed; check Err to tell
// the two apart.
func (it *Iterator) Next() bool {
	if it.err != nil || it.pos >= len(it.keys) {
		return false
	}

	key := it.keys[it.pos]
	it.pos++

	val, err := it.r.Get(key)
	if err != nil {
		it.err = err
		return false
	}

	it.key, it.val = key, val
	return true
}

// Key returns the key of the current entry. Valid only after a Next that
// returned true.
func (it *Iterator) Key() string { return it.key }

// Value returns the resolved value of the current entry. Valid only
// after a Next that returned true.
func (it *Iterator) Value() any { return it.val }

// Err returns the first resolution error encountered, or nil.
func (it *Iterator) Err() error { return it.err }

// Rewind restarts the pass, re-snapshotting the key order and clearing
// any recorded error.
func (it *Iterator) Rewind() {
	it.keys = it.r.Keys()
	it.pos = 0
	it.key, it.val, it.err = "", nil, nil
}
