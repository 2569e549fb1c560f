// Package ui renders status lines and download progress on stderr, keeping
// stdout free for machine-readable output.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Faint(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// Infof prints an informational line.
func Infof(format string, args ...any) {
	fmt.Fprintln(os.Stderr, infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a warning line. Warnings mean a fallback was taken, not that
// the run failed.
func Warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, warnStyle.Render("warning: "+fmt.Sprintf(format, args...)))
}

// Errorf prints an error line.
func Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+fmt.Sprintf(format, args...)))
}

// Successf prints a success line.
func Successf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}
