package table

import "testing"

func TestInsertAndLookup(t *testing.T) {
	tbl := New[int]()
	tbl.Insert("one", 1)
	tbl.Insert("two", 2)

	got, ok := tbl.Lookup("two")
	if !ok {
		t.Fatal("expected a match for two")
	}
	if got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestLookupMiss(t *testing.T) {
	tbl := New[int]()
	tbl.Insert("one", 1)

	got, ok := tbl.Lookup("three")
	if ok {
		t.Error("expected no match for unregistered label")
	}
	if got != 0 {
		t.Errorf("miss should return the zero value, got %d", got)
	}
}

func TestInsertFirstWins(t *testing.T) {
	tbl := New[string]()
	tbl.Insert("key", "first")
	tbl.Insert("key", "second")

	got, _ := tbl.Lookup("key")
	if got != "first" {
		t.Errorf("expected first registration to win, got %q", got)
	}
	if tbl.Len() != 1 {
		t.Errorf("expected 1 label, got %d", tbl.Len())
	}
}

func TestLen(t *testing.T) {
	tbl := New[int]()
	if tbl.Len() != 0 {
		t.Errorf("empty table should have length 0, got %d", tbl.Len())
	}
	tbl.Insert("a", 1)
	tbl.Insert("b", 2)
	if tbl.Len() != 2 {
		t.Errorf("expected 2 labels, got %d", tbl.Len())
	}
}
