package core

import (
	"testing"
)

func TestDictInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("b", 1).Set("a", 2).Set("c", 3)

	var keys []any
	d.Each(func(key, value any) {
		keys = append(keys, key)
	})

	want := []any{"b", "a", "c"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("key %d: expected %v, got %v", i, k, keys[i])
		}
	}
}

func TestDictReplaceKeepsPosition(t *testing.T) {
	d := NewDict()
	d.Set("a", 1).Set("b", 2)
	d.Set("a", 10)

	var first any
	d.Each(func(key, value any) {
		if first == nil {
			first = key
		}
	})
	if first != "a" {
		t.Errorf("expected replaced key to keep first position, got %v", first)
	}

	if v, ok := d.Get("a"); !ok || v != 10 {
		t.Errorf("expected a=10, got %v (present=%v)", v, ok)
	}
}

func TestDictOf(t *testing.T) {
	d := DictOf("name", "summit", "count", 3)
	if d.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", d.Len())
	}
	if v, _ := d.Get("count"); v != 3 {
		t.Errorf("expected count=3, got %v", v)
	}

	// Trailing key without a value maps to nil.
	odd := DictOf("only")
	if v, ok := odd.Get("only"); !ok || v != nil {
		t.Errorf("expected only=nil, got %v (present=%v)", v, ok)
	}
}

func TestDictDelete(t *testing.T) {
	d := DictOf("a", 1, "b", 2)
	if !d.Delete("a") {
		t.Error("expected Delete to report presence")
	}
	if d.Delete("a") {
		t.Error("expected second Delete to report absence")
	}
	if d.Len() != 1 {
		t.Errorf("expected 1 entry after delete, got %d", d.Len())
	}
}

func TestDictZeroValues(t *testing.T) {
	var nilDict *Dict
	if nilDict.Len() != 0 {
		t.Error("nil Dict should have zero length")
	}
	nilDict.Each(func(key, value any) {
		t.Error("nil Dict should not iterate")
	})

	var zero Dict
	zero.Set("k", "v")
	if v, _ := zero.Get("k"); v != "v" {
		t.Errorf("zero-value Dict should accept Set, got %v", v)
	}
}
