package ecs

import "testing"

type posA struct{ x, y float32 }
type velA struct{ dx, dy float32 }
type tagA struct{ set bool }
type nameA struct{ s string }
type emptyA struct{}

func TestNewComponentTypeStableHash(t *testing.T) {
	c1 := NewComponentType[posA]()
	c2 := NewComponentType[posA]()
	if c1.Hash() != c2.Hash() {
		t.Fatalf("same type produced different hashes: %d vs %d", c1.Hash(), c2.Hash())
	}
	if c1.Size() != 8 {
		t.Fatalf("expected size 8, got %d", c1.Size())
	}
}

func TestNewComponentTypeDistinctTypesDistinctHashes(t *testing.T) {
	pos := NewComponentType[posA]()
	vel := NewComponentType[velA]()
	if pos.Hash() == vel.Hash() {
		t.Fatalf("distinct types hashed to the same value: %d", pos.Hash())
	}
}

func TestTrivialFlag(t *testing.T) {
	tests := []struct {
		name    string
		trivial bool
	}{
		{"posA", true},
		{"tagA", true},
		{"nameA", false},
	}

	pos := NewComponentType[posA]()
	tag := NewComponentType[tagA]()
	name := NewComponentType[nameA]()

	got := map[string]bool{
		"posA":  pos.Trivial(),
		"tagA":  tag.Trivial(),
		"nameA": name.Trivial(),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got[tt.name] != tt.trivial {
				t.Errorf("Trivial() = %v, expected %v", got[tt.name], tt.trivial)
			}
		})
	}
}

func TestZeroSizeComponentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected NewComponentType to panic on a zero-size type")
		}
	}()
	NewComponentType[emptyA]()
}
