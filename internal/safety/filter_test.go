package safety

import "testing"

func TestIsSafe(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Lions live together in family groups called prides!", true},
		{"What color do you get when you mix red and yellow?", true},
		{"", true},
		{"That monster under the bed", false},
		{"A SCARY story", false},
		{"the war of 1812", false},
		// Whole-word boundary: banned substrings inside safe words pass.
		{"The chameleon is a protector of its badge", true},
		{"Warthogs are wild pigs", true},
		{"They painted the fence", true},
		{"A skunk can spray", true},
		// Punctuation still forms a word boundary.
		{"Is it dangerous?", false},
		{"bad.", false},
	}

	for _, tt := range tests {
		if got := IsSafe(tt.text); got != tt.want {
			t.Errorf("IsSafe(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestFirstViolation(t *testing.T) {
	if v := FirstViolation("a Scary ghost"); v != "scary" {
		t.Fatalf("first violation %q, want scary", v)
	}
	if v := FirstViolation("all clean here"); v != "" {
		t.Fatalf("expected empty violation, got %q", v)
	}
}
