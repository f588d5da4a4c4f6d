package core

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Dict is an insertion-ordered key/value mapping. It is the container
// type the renderer understands natively: entries render in the order
// they were set, which keeps output stable across calls.
type Dict struct {
	m *orderedmap.OrderedMap[any, any]
}

// NewDict creates an empty Dict.
func NewDict() *Dict {
	return &Dict{m: orderedmap.New[any, any]()}
}

// DictOf builds a Dict from alternating key, value arguments.
// A trailing key without a value maps to nil.
func DictOf(pairs ...any) *Dict {
	d := NewDict()
	for i := 0; i < len(pairs); i += 2 {
		if i+1 < len(pairs) {
			d.Set(pairs[i], pairs[i+1])
		} else {
			d.Set(pairs[i], nil)
		}
	}
	return d
}

// Set stores value under key, replacing any existing entry while
// keeping its original position. It returns the Dict for chaining.
func (d *Dict) Set(key, value any) *Dict {
	if d.m == nil {
		d.m = orderedmap.New[any, any]()
	}
	d.m.Set(key, value)
	return d
}

// Get returns the value stored under key.
func (d *Dict) Get(key any) (any, bool) {
	if d == nil || d.m == nil {
		return nil, false
	}
	return d.m.Get(key)
}

// Delete removes key and reports whether it was present.
func (d *Dict) Delete(key any) bool {
	if d == nil || d.m == nil {
		return false
	}
	_, present := d.m.Delete(key)
	return present
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil || d.m == nil {
		return 0
	}
	return d.m.Len()
}

// Each calls fn for every entry in insertion order.
func (d *Dict) Each(fn func(key, value any)) {
	if d == nil || d.m == nil {
		return
	}
	for pair := d.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
