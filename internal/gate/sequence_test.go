package gate

import (
	"fmt"
	"strings"
	"testing"
)

func TestSequenceSuffixMatch(t *testing.T) {
	s := NewSequence(SecretSequence, HistoryLimit)
	taps := []string{"terminal", "header", "terminal", "cert-0", "cert-2", "cert-1"}

	unlocks := 0
	for _, id := range taps {
		if s.Record(id) {
			unlocks++
		}
	}
	if unlocks != 1 {
		t.Fatalf("unlocks = %d, want 1", unlocks)
	}
	if h := s.History(); len(h) != 0 {
		t.Fatalf("history after match = %v, want empty", h)
	}
}

func TestSequenceWrongOrder(t *testing.T) {
	s := NewSequence(SecretSequence, HistoryLimit)
	for _, id := range []string{"header", "terminal", "cert-0", "cert-1", "cert-2"} {
		if s.Record(id) {
			t.Fatalf("unlocked on %q", id)
		}
	}
	if got := len(s.History()); got != 5 {
		t.Fatalf("history length = %d, want 5", got)
	}
}

func TestSequenceHistoryBounded(t *testing.T) {
	s := NewSequence(SecretSequence, HistoryLimit)
	for i := 0; i < 25; i++ {
		s.Record(fmt.Sprintf("noise-%d", i))
	}
	h := s.History()
	if len(h) != HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(h), HistoryLimit)
	}
	if h[0] != "noise-15" {
		t.Fatalf("oldest = %q, want noise-15", h[0])
	}

	for _, id := range SecretSequence {
		if s.Record(id) {
			return
		}
	}
	t.Fatalf("secret after noise did not unlock")
}

func TestRecordTapKeepsHistoryInStore(t *testing.T) {
	store := mapStore{}
	other := mapStore{}
	for _, id := range SecretSequence[:4] {
		RecordTap(store, SecretSequence, id)
		RecordTap(other, SecretSequence, "header")
	}
	if RecordTap(other, SecretSequence, SecretSequence[4]) {
		t.Fatalf("second store unlocked with the first store's taps")
	}
	if !RecordTap(store, SecretSequence, SecretSequence[4]) {
		t.Fatalf("sequence did not unlock")
	}
	if _, ok := store[TapsKey]; ok {
		t.Fatalf("history kept after unlock: %q", store[TapsKey])
	}
}

func TestRecordTapBoundsHistory(t *testing.T) {
	store := mapStore{}
	for i := 0; i < 100; i++ {
		RecordTap(store, SecretSequence, "header")
	}
	if n := len(strings.Split(store[TapsKey], "\n")); n != HistoryLimit {
		t.Fatalf("stored history length = %d, want %d", n, HistoryLimit)
	}
}

func TestRecordTapRejectsBadIDs(t *testing.T) {
	store := mapStore{}
	if RecordTap(store, SecretSequence, "") || RecordTap(store, SecretSequence, "a\nb") {
		t.Fatalf("bad id matched")
	}
	if len(store) != 0 {
		t.Fatalf("bad id recorded: %v", store)
	}
}
