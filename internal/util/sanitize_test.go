package util

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple", "Player", nil},
		{"with spaces", "boss room door", nil},
		{"unicode", "sortie_nord", nil},
		{"accented NFC", "caf\u00e9", nil},
		{"empty", "", ErrEmptyName},
		{"blank", "   ", ErrEmptyName},
		{"leading space", " door", ErrNameSpacing},
		{"trailing tab", "door\t", ErrNameSpacing},
		{"pipe", "a|b", ErrReservedChar},
		{"colon", "a:b", ErrReservedChar},
		{"comma", "a,b", ErrReservedChar},
		{"newline", "a\nb", ErrUnprintable},
		{"decomposed", "cafe\u0301", ErrNotNormal},
		{"too long", strings.Repeat("x", MaxNameLength+1), ErrNameTooLong},
		{"max length", strings.Repeat("x", MaxNameLength), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SanitizeName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SanitizeName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	got := NormalizeName("  cafe\u0301 ")
	if got != "caf\u00e9" {
		t.Errorf("NormalizeName = %q, want %q", got, "caf\u00e9")
	}
	if err := SanitizeName(got); err != nil {
		t.Errorf("normalized name should sanitize cleanly, got %v", err)
	}
}
