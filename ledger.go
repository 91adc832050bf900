package royalset

import (
	"errors"
	"sort"
	"sync"
)

var ErrInvalidHoles = errors.New("number of holes should be 3, 9, 18, 36, 54 or 72")

// Modes returns the hole counts a game can be played over.
func Modes() []int {
	return []int{3, 9, 18, 36, 54, 72}
}

func validMode(holes int) bool {
	for _, m := range Modes() {
		if m == holes {
			return true
		}
	}
	return false
}

// Ledger keeps the best score reached in each mode. It lives for the whole
// process and is shared by every game; all access goes through its mutex.
type Ledger struct {
	mu     sync.Mutex
	scores map[int]int
}

func NewLedger() *Ledger {
	scores := make(map[int]int)
	for _, m := range Modes() {
		scores[m] = 0
	}
	return &Ledger{scores: scores}
}

// Record raises the best score for holes to score if score beats it, and
// reports whether it did.
func (l *Ledger) Record(holes, score int) bool {
	if !validMode(holes) {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if score <= l.scores[holes] {
		return false
	}
	l.scores[holes] = score
	return true
}

func (l *Ledger) Best(holes int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.scores[holes]
}

// LedgerEntry is a mode and its best score.
type LedgerEntry struct {
	Holes int `json:"holes"`
	Best  int `json:"best"`
}

// Scores returns every mode's best score, ordered by hole count.
func (l *Ledger) Scores() []LedgerEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]LedgerEntry, 0, len(l.scores))
	for holes, best := range l.scores {
		entries = append(entries, LedgerEntry{holes, best})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Holes < entries[j].Holes
	})
	return entries
}
