package sets

import (
	"testing"
)

func TestSetBasics(t *testing.T) {
	s := New("a", "b")
	if !s.Has("a") || !s.Has("b") {
		t.Fatalf("expected initial members present")
	}
	if s.Has("c") {
		t.Fatalf("unexpected member")
	}

	s.Add("c")
	if !s.Has("c") {
		t.Fatalf("Add failed")
	}

	s.Delete("a")
	if s.Has("a") {
		t.Fatalf("Delete failed")
	}
	if len(s) != 2 {
		t.Fatalf("expected 2 members, got %d", len(s))
	}
}

func TestClone(t *testing.T) {
	s := New(1, 2)
	c := s.Clone()
	c.Add(3)
	if s.Has(3) {
		t.Fatalf("Clone shares storage with original")
	}
	if !c.Has(1) || !c.Has(2) {
		t.Fatalf("Clone dropped members")
	}
}

func TestSortedFold(t *testing.T) {
	s := New("banana", "Apple", "cherry", "apricot")
	got := SortedFold(s)
	want := []string{"Apple", "apricot", "banana", "cherry"}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v", i, got)
		}
	}
}

func TestSortedFoldEmpty(t *testing.T) {
	if got := SortedFold(New[string]()); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
