package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// ANSI palette indexes, identical on light and dark terminals
var (
	green   = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	red     = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	yellow  = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	blue    = lipgloss.AdaptiveColor{Light: "4", Dark: "4"}
	magenta = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	cyan    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"}
	gray    = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
)

// Styles used by the commands. Rebuilt by SetTheme.
var (
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleTitle   lipgloss.Style
	StyleHeader  lipgloss.Style
	StyleBorder  lipgloss.Style

	styleInfo    lipgloss.Style
	styleWarning lipgloss.Style
	styleKey     lipgloss.Style
)

const (
	IconSuccess = "✔"
	IconError   = "✘"

	iconInfo    = "ℹ"
	iconWarning = "⚠"
	iconUpload  = "⇪"
)

func init() {
	SetTheme("auto")
}

// SetTheme forces a light or dark background; anything else keeps lipgloss detection
func SetTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	StyleSuccess = lipgloss.NewStyle().Foreground(green).Bold(true)
	StyleError = lipgloss.NewStyle().Foreground(red).Bold(true)
	StyleMuted = lipgloss.NewStyle().Foreground(gray)
	StyleTitle = lipgloss.NewStyle().Foreground(magenta).Bold(true).Underline(true)
	StyleHeader = lipgloss.NewStyle().Foreground(magenta).Bold(true)
	StyleBorder = lipgloss.NewStyle().Foreground(gray)

	styleInfo = lipgloss.NewStyle().Foreground(cyan)
	styleWarning = lipgloss.NewStyle().Foreground(yellow).Bold(true)
	styleKey = lipgloss.NewStyle().Foreground(blue)
}

func FormatSuccess(msg string) string {
	return StyleSuccess.Render(IconSuccess + " " + msg)
}

// FormatError is used for the final diagnostic printed to stderr
func FormatError(msg string) string {
	return StyleError.Render(IconError + " " + msg)
}

func FormatInfo(msg string) string {
	return styleInfo.Render(iconInfo + " " + msg)
}

func FormatWarning(msg string) string {
	return styleWarning.Render(iconWarning + " " + msg)
}

// FormatUpload marks a completed object store upload
func FormatUpload(msg string) string {
	return styleKey.Render(iconUpload + " " + msg)
}

func FormatMuted(text string) string {
	return StyleMuted.Render(text)
}

// RenderKeyValue renders "key: value" with the key highlighted
func RenderKeyValue(key, value string) string {
	return styleKey.Render(key) + ": " + value
}
