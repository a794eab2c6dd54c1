package config

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"u", "u"},
		{"R", "R"},
		{"Ctrl+R", "ctrl+r"},
		{"ctrl+z", "ctrl+z"},
		{"Alt+X", "alt+X"},
		{"Up", "up"},
		{"+", "+"},
	}

	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
