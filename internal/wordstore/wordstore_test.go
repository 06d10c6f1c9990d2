package wordstore

import (
	"path/filepath"
	"testing"
)

func buildTestStore(t *testing.T, entries []Entry) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.bin")
	if err := Build(path, entries); err != nil {
		t.Fatalf("Build: %v", err)
	}
	s, err := Open(path, 100)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// Build -> Open -> Query: for every (term, count) inserted, Get(term) ==
// count and At(index_of(term)) == (term, count).
func TestBuildOpenQueryRoundTrip(t *testing.T) {
	entries := []Entry{
		{Term: "brown", Count: 4000},
		{Term: "fox", Count: 3000},
		{Term: "quick", Count: 5000},
		{Term: "the", Count: 10000},
	}
	s := buildTestStore(t, entries)

	want := map[string]uint64{"brown": 4000, "fox": 3000, "quick": 5000, "the": 10000}
	for term, count := range want {
		if got := s.Get(term); got != count {
			t.Errorf("Get(%q) = %d, want %d", term, got, count)
		}
	}

	if s.NumEntries() != uint32(len(entries)) {
		t.Fatalf("NumEntries() = %d, want %d", s.NumEntries(), len(entries))
	}

	// Sortedness: terms read in order are strictly ascending.
	var prev string
	for i := uint32(0); i < s.NumEntries(); i++ {
		term, count, ok := s.At(i)
		if !ok {
			t.Fatalf("At(%d) not ok", i)
		}
		if i > 0 && term <= prev {
			t.Fatalf("terms not strictly ascending at index %d: prev=%q term=%q", i, prev, term)
		}
		prev = term
		if want[term] != count {
			t.Errorf("At(%d) = (%q, %d), want count %d", i, term, count, want[term])
		}
	}
}

func TestGetMissingTermReturnsZero(t *testing.T) {
	s := buildTestStore(t, []Entry{{Term: "hello", Count: 1}})
	if got := s.Get("goodbye"); got != 0 {
		t.Errorf("Get(missing) = %d, want 0", got)
	}
	if s.Contains("goodbye") {
		t.Error("Contains(missing) = true, want false")
	}
}

func TestDuplicateTermLastCountWins(t *testing.T) {
	entries := []Entry{
		{Term: "dup", Count: 1},
		{Term: "dup", Count: 42},
	}
	s := buildTestStore(t, entries)
	if got := s.Get("dup"); got != 42 {
		t.Errorf("Get(dup) = %d, want 42 (last write wins)", got)
	}
	if s.NumEntries() != 1 {
		t.Fatalf("NumEntries() = %d, want 1 after de-duplication", s.NumEntries())
	}
}

func TestPrefixScanOrdersByCountDescending(t *testing.T) {
	entries := []Entry{
		{Term: "cat", Count: 10},
		{Term: "car", Count: 500},
		{Term: "care", Count: 100},
		{Term: "dog", Count: 999},
	}
	s := buildTestStore(t, entries)

	results := s.PrefixScan("ca", 10)
	if len(results) != 3 {
		t.Fatalf("PrefixScan(ca) len = %d, want 3", len(results))
	}
	if results[0].Term != "car" || results[1].Term != "care" || results[2].Term != "cat" {
		t.Fatalf("PrefixScan(ca) = %+v, want car, care, cat in count-descending order", results)
	}
}

func TestEstimateMaxCountFallsBackWithoutCommonWords(t *testing.T) {
	s := buildTestStore(t, []Entry{{Term: "zzz", Count: 7}, {Term: "yyy", Count: 3}})
	if got := s.EstimateMaxCount(); got != 7 {
		t.Errorf("EstimateMaxCount() = %d, want 7", got)
	}
}
