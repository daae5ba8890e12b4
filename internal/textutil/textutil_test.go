package textutil

import "testing"

func TestRuneCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"挑戦し続ける", 6},
		{"aあb", 3},
	}
	for _, tt := range tests {
		if got := RuneCount(tt.input); got != tt.want {
			t.Errorf("RuneCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"挑戦", 4},
		{"aあ", 3},
	}
	for _, tt := range tests {
		if got := DisplayWidth(tt.input); got != tt.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestClipRunes(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trun…"},
		{"挑戦し続ける", 3, "挑戦…"},
	}
	for _, tt := range tests {
		if got := ClipRunes(tt.input, tt.max); got != tt.want {
			t.Errorf("ClipRunes(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}

func TestTernary(t *testing.T) {
	if Ternary(true, "a", "b") != "a" || Ternary(false, "a", "b") != "b" {
		t.Fatal("Ternary misbehaved")
	}
}
