package gate

import "strings"

// SecretSequence is the tap order that unlocks the first gated page.
var SecretSequence = []string{"header", "terminal", "cert-0", "cert-2", "cert-1"}

// HistoryLimit caps how many taps a Sequence remembers.
const HistoryLimit = 10

const tapSeparator = "\n"

// Sequence is a rolling tap history matched against a secret. Any run of
// taps that ends with the secret matches.
type Sequence struct {
	secret  []string
	limit   int
	history []string
}

func NewSequence(secret []string, limit int) *Sequence {
	if limit < len(secret) {
		limit = len(secret)
	}
	return &Sequence{secret: append([]string(nil), secret...), limit: limit}
}

// Record appends id and reports whether the trailing taps match the
// secret. A match clears the history.
func (s *Sequence) Record(id string) bool {
	s.history = append(s.history, id)
	if len(s.history) > s.limit {
		s.history = append([]string(nil), s.history[len(s.history)-s.limit:]...)
	}

	n := len(s.secret)
	if n == 0 || len(s.history) < n {
		return false
	}
	tail := s.history[len(s.history)-n:]
	for i := range tail {
		if tail[i] != s.secret[i] {
			return false
		}
	}
	s.history = nil
	return true
}

func (s *Sequence) History() []string {
	return append([]string(nil), s.history...)
}

// Restore replaces the history, keeping only the newest entries that fit.
func (s *Sequence) Restore(history []string) {
	if len(history) > s.limit {
		history = history[len(history)-s.limit:]
	}
	s.history = append([]string(nil), history...)
}

// RecordTap feeds id into the tap history kept in store under TapsKey and
// reports whether it completed secret. The history lives with the rest of
// the visitor's session, so it expires with it.
func RecordTap(store Store, secret []string, id string) bool {
	if id == "" || strings.Contains(id, tapSeparator) {
		return false
	}
	seq := NewSequence(secret, HistoryLimit)
	if raw, ok := store.Get(TapsKey); ok && raw != "" {
		seq.Restore(strings.Split(raw, tapSeparator))
	}
	if seq.Record(id) {
		store.Delete(TapsKey)
		return true
	}
	store.Set(TapsKey, strings.Join(seq.history, tapSeparator))
	return false
}
