package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"golang.org/x/term"
)

// Progress renders a single-line download progress display. On a terminal
// it redraws a bar in place; otherwise it logs plain percentage lines at
// coarse steps so piped output stays readable.
type Progress struct {
	bar      progress.Model
	tty      bool
	lastStep int
	done     bool
}

// NewProgress creates a progress renderer writing to stderr.
func NewProgress() *Progress {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30
	bar.ShowPercentage = false

	return &Progress{
		bar:      bar,
		tty:      term.IsTerminal(int(os.Stderr.Fd())),
		lastStep: -1,
	}
}

// Update redraws the progress line. percent is 0..100; etaSeconds < 0 means
// unknown.
func (p *Progress) Update(percent float64, etaSeconds int) {
	if p.done {
		return
	}

	if !p.tty {
		// Only log every 10% when not attached to a terminal.
		step := int(percent) / 10
		if step > p.lastStep {
			p.lastStep = step
			fmt.Fprintf(os.Stderr, "downloading: %3.0f%%\n", percent)
		}
		return
	}

	line := fmt.Sprintf("\r\x1b[K%s %5.1f%%", p.bar.ViewAs(percent/100), percent)
	if etaSeconds >= 0 {
		line += fmt.Sprintf("  ETA %s", formatETA(etaSeconds))
	}
	fmt.Fprint(os.Stderr, line)
}

// Finish clears the progress line and marks the download complete.
func (p *Progress) Finish() {
	if p.done {
		return
	}
	p.done = true
	if p.tty {
		fmt.Fprint(os.Stderr, "\r\x1b[K")
	}
}

// formatETA formats seconds as M:SS or H:MM:SS.
func formatETA(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
