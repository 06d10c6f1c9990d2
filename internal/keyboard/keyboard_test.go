package keyboard

import (
	"path/filepath"
	"testing"
)

func TestQWERTYSameLetterIsZero(t *testing.T) {
	m := NewQWERTY()
	for c := byte('a'); c <= 'z'; c++ {
		if d := m.Distance(c, c); d != 0 {
			t.Errorf("Distance(%c, %c) = %d, want 0", c, c, d)
		}
	}
}

func TestQWERTYAdjacentKeysCloserThanFar(t *testing.T) {
	m := NewQWERTY()
	// h and j are adjacent on a QWERTY home row.
	adjacent := m.Distance('h', 'j')
	// q and p are at opposite ends of the top row.
	far := m.Distance('q', 'p')
	if adjacent >= far {
		t.Errorf("adjacent distance (%d) should be less than far distance (%d)", adjacent, far)
	}
}

func TestQWERTYSymmetric(t *testing.T) {
	m := NewQWERTY()
	for a := byte('a'); a <= 'z'; a++ {
		for b := byte('a'); b <= 'z'; b++ {
			if m.Distance(a, b) != m.Distance(b, a) {
				t.Fatalf("Distance(%c,%c)=%d != Distance(%c,%c)=%d", a, b, m.Distance(a, b), b, a, m.Distance(b, a))
			}
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := NewQWERTY()
	path := filepath.Join(t.TempDir(), "kbd.bin")
	if err := m.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for a := byte('a'); a <= 'z'; a++ {
		for b := byte('a'); b <= 'z'; b++ {
			if loaded.Distance(a, b) != m.Distance(a, b) {
				t.Fatalf("round-tripped distance mismatch at (%c,%c): %d != %d", a, b, loaded.Distance(a, b), m.Distance(a, b))
			}
		}
	}
}

func TestNonASCIILetterIsFar(t *testing.T) {
	m := NewQWERTY()
	if got := m.Distance('a', '1'); got != Far {
		t.Errorf("Distance(a, '1') = %d, want Far (%d)", got, Far)
	}
}
