package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	urlStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	fileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ColorURL styles a URL for console output
func ColorURL(url string) string {
	return urlStyle.Render(url)
}

// ColorFile styles a file name for console output
func ColorFile(name string) string {
	return fileStyle.Render(name)
}

// Dim styles secondary text
func Dim(text string) string {
	return dimStyle.Render(text)
}

// UsePlainStyle disables colors and text attributes, for output that is not a terminal
func UsePlainStyle() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
