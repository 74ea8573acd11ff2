package source

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		base, name string
		want       string
	}{
		{"../CheatSheet", "Go", "../CheatSheet/Go.md"},
		{"/CheatSheet", "C++", "/CheatSheet/C++.md"},
		{"/CheatSheet/", "Python", "/CheatSheet/Python.md"},
		{"http://docs.local/sheets", "TypeScript", "http://docs.local/sheets/TypeScript.md"},
		{"/CheatSheet", "", ""},
		{"", "Java", "/Java.md"},
	}
	for _, tt := range tests {
		got := Resolve(tt.base, tt.name)
		if got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.base, tt.name, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("PHP"); got != "PHP.md" {
		t.Errorf("FileName(PHP) = %q, want PHP.md", got)
	}
	if got := FileName(""); got != "" {
		t.Errorf("FileName(\"\") = %q, want empty", got)
	}
}
