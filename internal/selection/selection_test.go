package selection

import "testing"

var cheatSheets = []string{"C++", "Go", "Java", "JavaScript", "PHP", "Python", "TypeScript"}

func TestDefaults(t *testing.T) {
	tests := []struct {
		docs        []string
		left, right string
	}{
		{cheatSheets, "C++", "Go"},
		{[]string{"Go"}, "Go", "Go"},
		{nil, "", ""},
	}
	for _, tt := range tests {
		sel := Defaults(tt.docs)
		if sel[Left] != tt.left || sel[Right] != tt.right {
			t.Errorf("Defaults(%v) = %v, want left=%q right=%q", tt.docs, sel, tt.left, tt.right)
		}
	}
}

func TestSetLeavesOtherSlot(t *testing.T) {
	s := New(Defaults(cheatSheets))

	if err := s.Set(Left, "Python"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Get(Left); got != "Python" {
		t.Errorf("left = %q, want Python", got)
	}
	if got := s.Get(Right); got != "Go" {
		t.Errorf("right = %q, want Go", got)
	}
}

func TestSetAcceptsAnyName(t *testing.T) {
	s := New(Defaults(cheatSheets))
	if err := s.Set(Right, "Not In The List"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Get(Right); got != "Not In The List" {
		t.Errorf("right = %q", got)
	}
	if err := s.Set(Slot("middle"), "Go"); err == nil {
		t.Error("expected error for unknown slot")
	}
}

func TestSameDocumentInBothSlots(t *testing.T) {
	s := New(Defaults(cheatSheets))
	s.Set(Right, "C++")
	snap := s.Snapshot()
	if snap[Left] != "C++" || snap[Right] != "C++" {
		t.Errorf("Snapshot = %v, want C++ in both slots", snap)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := New(Defaults(cheatSheets))
	snap := s.Snapshot()
	snap[Left] = "mutated"
	if s.Get(Left) != "C++" {
		t.Error("mutating a snapshot changed the state")
	}
}

func TestSubscribe(t *testing.T) {
	s := New(Defaults(cheatSheets))
	var got []Slot
	s.Subscribe(func(slot Slot, name string) { got = append(got, slot) })

	s.Set(Left, "Java")
	s.Set(Right, "PHP")
	if len(got) != 2 || got[0] != Left || got[1] != Right {
		t.Errorf("notifications = %v", got)
	}
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		in   string
		want Slot
		ok   bool
	}{
		{"left", Left, true},
		{"Right", Right, true},
		{"fileA", Left, true},
		{"fileB", Right, true},
		{"center", "", false},
	}
	for _, tt := range tests {
		got, err := ParseSlot(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseSlot(%q) = %q, %v", tt.in, got, err)
		}
	}
}
