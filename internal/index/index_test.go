package index

import "testing"

func TestNewIsEmpty(t *testing.T) {
	idx := New()
	if !idx.IsEmpty() {
		t.Fatalf("New() is not empty")
	}
}

func TestIsEmptyFalseAfterStaging(t *testing.T) {
	idx := New()
	idx.StagedAdd["a.txt"] = "d1"
	if idx.IsEmpty() {
		t.Fatalf("IsEmpty() = true with a staged addition")
	}

	idx = New()
	idx.StagedRemove["b.txt"] = true
	if idx.IsEmpty() {
		t.Fatalf("IsEmpty() = true with a staged removal")
	}
}

func TestClear(t *testing.T) {
	idx := New()
	idx.StagedAdd["a.txt"] = "d1"
	idx.StagedRemove["b.txt"] = true

	idx.Clear()
	if !idx.IsEmpty() {
		t.Fatalf("Clear() did not empty the index")
	}
}

func TestCloneIsDeep(t *testing.T) {
	idx := New()
	idx.StagedAdd["a.txt"] = "d1"
	idx.StagedRemove["b.txt"] = true

	clone := idx.Clone()
	clone.StagedAdd["a.txt"] = "changed"
	delete(clone.StagedRemove, "b.txt")

	if idx.StagedAdd["a.txt"] != "d1" {
		t.Fatalf("mutating clone.StagedAdd affected the original")
	}
	if !idx.StagedRemove["b.txt"] {
		t.Fatalf("mutating clone.StagedRemove affected the original")
	}
}
