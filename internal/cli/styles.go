// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lucianookdp/HomeWise/internal/model"
)

var (
	// PrimaryColor is the main theme color (HomeWise emerald).
	PrimaryColor = lipgloss.Color("#34D399")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#6EE7B7")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#F87171")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#94A3B8")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#64748B")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// PromptStyle is used for user prompts.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 2)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	InfoIcon    = "•"
	HouseIcon   = "🏠"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a title with the house icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(HouseIcon + " " + title)
}

// FormatPrompt formats a prompt message.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " → ")
}

// RenderStatus renders a workflow status as a one-line banner. Idle
// and loading states render nothing; loading is shown by the spinner.
func RenderStatus(status model.Status) string {
	switch status.Kind {
	case model.StatusSuccess:
		return FormatSuccess(status.Message)
	case model.StatusError:
		return FormatError(status.Message)
	default:
		return ""
	}
}

// RenderBox renders content in a styled box with a title.
func RenderBox(title, content string) string {
	return BoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render(title),
		content,
	))
}
