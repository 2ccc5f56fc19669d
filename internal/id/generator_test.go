package id

import "testing"

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		id := Generate()
		if !IsProjectID(id) {
			t.Fatalf("Generate returned %q, want %q prefix", id, ProjectPrefix)
		}
		if seen[id] {
			t.Fatalf("Duplicate ID %q", id)
		}
		seen[id] = true
	}
}

func TestIsProjectID(t *testing.T) {
	tests := map[string]bool{
		"p_abc123": true,
		"p_":       false,
		"abc123":   false,
		"":         false,
	}
	for input, want := range tests {
		if got := IsProjectID(input); got != want {
			t.Errorf("IsProjectID(%q) = %v, want %v", input, got, want)
		}
	}
}
