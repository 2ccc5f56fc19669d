package cli

import "testing"

func TestParseTarget(t *testing.T) {
	tests := []struct {
		arg       string
		forceName bool
		want      target
	}{
		{"42", false, target{ID: 42, IsID: true}},
		{" 7 ", false, target{ID: 7, IsID: true}},
		{"-3", false, target{ID: -3, IsID: true}},
		{"42", true, target{Name: "42"}},
		{"door", false, target{Name: "door"}},
		{"  door ", false, target{Name: "door"}},
		{"40000", false, target{Name: "40000"}},
		{"4a", false, target{Name: "4a"}},
	}

	for _, tc := range tests {
		got := parseTarget(tc.arg, tc.forceName)
		if got != tc.want {
			t.Errorf("parseTarget(%q, %v) = %+v, want %+v", tc.arg, tc.forceName, got, tc.want)
		}
	}
}
