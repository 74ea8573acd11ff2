package selection

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Slot is one of the two comparison positions.
type Slot string

const (
	Left  Slot = "left"
	Right Slot = "right"
)

// Slots lists every slot in display order.
var Slots = []Slot{Left, Right}

// ParseSlot accepts "left"/"right" and the legacy "fileA"/"fileB" names.
func ParseSlot(s string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "filea", "a":
		return Left, nil
	case "right", "fileb", "b":
		return Right, nil
	}
	return "", fmt.Errorf("unknown slot %q: must be left or right", s)
}

// Selection maps each slot to its chosen document name.
type Selection map[Slot]string

// Defaults returns the initial selection for a document list: the first two
// names. A single-name list fills both slots; an empty one leaves them empty.
func Defaults(documents []string) Selection {
	sel := Selection{Left: "", Right: ""}
	switch {
	case len(documents) >= 2:
		sel[Left], sel[Right] = documents[0], documents[1]
	case len(documents) == 1:
		sel[Left], sel[Right] = documents[0], documents[0]
	}
	return sel
}

// State holds the current Selection and notifies observers on change.
type State struct {
	mu   sync.RWMutex
	sel  Selection
	subs []func(Slot, string)
}

// New creates a State seeded with initial.
func New(initial Selection) *State {
	sel := Selection{Left: initial[Left], Right: initial[Right]}
	return &State{sel: sel}
}

// Get returns the document name for slot.
func (s *State) Get(slot Slot) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel[slot]
}

// Snapshot returns a copy of the current Selection.
func (s *State) Snapshot() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Selection{Left: s.sel[Left], Right: s.sel[Right]}
}

// Set replaces the name for one slot, leaving the other untouched. Any
// name is accepted.
func (s *State) Set(slot Slot, name string) error {
	if slot != Left && slot != Right {
		return fmt.Errorf("unknown slot %q", slot)
	}
	s.mu.Lock()
	s.sel[slot] = name
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(slot, name)
	}
	return nil
}

// Subscribe registers fn to be called after every Set.
func (s *State) Subscribe(fn func(Slot, string)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}
