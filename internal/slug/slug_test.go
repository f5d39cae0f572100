// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple title", "Installation", "installation"},
		{"spaces become hyphens", "Getting Started", "getting-started"},
		{"lowercased", "API Reference", "api-reference"},
		{"ampersand expands", "Tips & Tricks", "tips-and-tricks"},
		{"already a slug", "dark-mode", "dark-mode"},
		{"collapses separators", "Hooks  /  Effects", "hooks-effects"},
		{"empty input", "", ""},
		{"current dir alias", ".", ""},
		{"parent dir alias", "..", ""},
		{"dots only", "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Make(tt.in)
			if got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
			}
			// Deterministic: a second call must agree.
			if again := Make(tt.in); again != got {
				t.Errorf("Make(%q) not deterministic: %q then %q", tt.in, got, again)
			}
		})
	}
}

func TestMakeNeverEmitsSeparators(t *testing.T) {
	inputs := []string{"a/b/c", `a\b`, "../escape", "CSS: Flex & Grid"}
	for _, in := range inputs {
		got := Make(in)
		for _, r := range got {
			if r == '/' || r == '\\' {
				t.Errorf("Make(%q) = %q contains a path separator", in, got)
			}
		}
	}
}

func TestUniquifier(t *testing.T) {
	u := NewUniquifier()

	if got := u.Take("Installation"); got != "installation" {
		t.Errorf("first Take = %q, want %q", got, "installation")
	}
	if got := u.Take("Installation"); got != "installation-2" {
		t.Errorf("second Take = %q, want %q", got, "installation-2")
	}
	if got := u.Take("installation"); got != "installation-3" {
		t.Errorf("third Take = %q, want %q", got, "installation-3")
	}
}

func TestUniquifierSuffixCollision(t *testing.T) {
	u := NewUniquifier()

	// A natural "intro-2" title must not collide with the generated
	// suffix for the second "Intro".
	first := u.Take("Intro")
	second := u.Take("Intro")
	natural := u.Take("Intro 2")

	seen := map[string]bool{first: true}
	for _, s := range []string{second, natural} {
		if seen[s] {
			t.Fatalf("duplicate slug allocated: %q (got %q, %q, %q)", s, first, second, natural)
		}
		seen[s] = true
	}
}

func TestUniquifierEmptyInput(t *testing.T) {
	u := NewUniquifier()
	if got := u.Take(""); got != "untitled" {
		t.Errorf("Take(\"\") = %q, want %q", got, "untitled")
	}
	if got := u.Take(""); got != "untitled-2" {
		t.Errorf("second Take(\"\") = %q, want %q", got, "untitled-2")
	}
}
