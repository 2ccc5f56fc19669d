package util

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxNameLength is the longest name, in runes, the editor accepts.
const MaxNameLength = 32

// ReservedNameChars are the characters the export format uses as delimiters.
const ReservedNameChars = "|:,"

var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrNameTooLong  = fmt.Errorf("name cannot be longer than %d characters", MaxNameLength)
	ErrNameSpacing  = errors.New("name cannot start or end with whitespace")
	ErrNotNormal    = errors.New("name must be in Unicode NFC form")
	ErrReservedChar = fmt.Errorf("name cannot contain any of %q", ReservedNameChars)
	ErrUnprintable  = errors.New("name cannot contain control or unprintable characters")
)

// SanitizeName checks that name is usable as a named ID:
//   - Non-empty, without leading/trailing whitespace
//   - At most MaxNameLength runes
//   - Free of the export delimiters and unprintable characters
//   - Already NFC-normalized, so one visual name has one encoding
func SanitizeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(name) != name {
		return ErrNameSpacing
	}
	if !utf8.ValidString(name) {
		return ErrUnprintable
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if strings.ContainsAny(name, ReservedNameChars) {
		return ErrReservedChar
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return ErrUnprintable
		}
	}
	if !norm.NFC.IsNormalString(name) {
		return ErrNotNormal
	}
	return nil
}

// NormalizeName applies the fixes SanitizeName can't make silently on the
// caller's behalf: trims surrounding whitespace and composes to NFC.
// Used for interactive input before validation.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
