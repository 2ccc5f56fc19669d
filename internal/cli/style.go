package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/amterp/nids/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Palette. Each color has a dark and a light terminal variant.
var (
	ColorSuccess = lipgloss.AdaptiveColor{Dark: "#22c55e", Light: "#16a34a"} // green
	ColorError   = lipgloss.AdaptiveColor{Dark: "#ef4444", Light: "#dc2626"} // red
	ColorWarning = lipgloss.AdaptiveColor{Dark: "#f59e0b", Light: "#d97706"} // amber
	ColorMuted   = lipgloss.AdaptiveColor{Dark: "#6b7280", Light: "#9ca3af"} // gray
	ColorAccent  = lipgloss.AdaptiveColor{Dark: "#a78bfa", Light: "#7c3aed"} // purple for IDs
)

var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleID      = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleBold    = lipgloss.NewStyle().Bold(true)
)

// Status icons
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "→"
)

// PrintSuccess prints a success message with a green checkmark.
func PrintSuccess(format string, args ...any) {
	printStatus(os.Stdout, StyleSuccess, IconSuccess, format, args...)
}

// PrintError prints an error message with a red X to stderr.
func PrintError(format string, args ...any) {
	printStatus(os.Stderr, StyleError, IconError, format, args...)
}

// PrintWarning prints a warning message with an amber icon to stderr.
func PrintWarning(format string, args ...any) {
	printStatus(os.Stderr, StyleWarning, IconWarning, format, args...)
}

// PrintInfo prints an info message with a muted arrow.
func PrintInfo(format string, args ...any) {
	printStatus(os.Stdout, StyleMuted, IconInfo, format, args...)
}

func printStatus(w io.Writer, style lipgloss.Style, icon, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", style.Render(icon), fmt.Sprintf(format, args...))
}

// RenderID renders a numeric ID in accent color.
func RenderID(id int16) string {
	return StyleID.Render(strconv.Itoa(int(id)))
}

// RenderMuted renders text in muted color.
func RenderMuted(text string) string {
	return StyleMuted.Render(text)
}

// RenderBold renders text in bold.
func RenderBold(text string) string {
	return StyleBold.Render(text)
}

// RenderBinding renders "category name=id".
func RenderBinding(c model.Category, name string, id int16) string {
	return fmt.Sprintf("%s %s=%s", RenderMuted(c.String()), RenderBold(name), RenderID(id))
}

// LabelValue formats a label-value pair with right-aligned label.
func LabelValue(label, value string, labelWidth int) string {
	labelStyle := lipgloss.NewStyle().
		Width(labelWidth).
		Align(lipgloss.Right).
		Foreground(ColorMuted)
	return fmt.Sprintf("%s %s", labelStyle.Render(label+":"), value)
}
