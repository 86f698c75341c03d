package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DebugPanel records dispatch decisions (command vs. conversion, base
// changes, parse failures) for display alongside the transcript.
type DebugPanel struct {
	enabled bool
	lines   []string
	buffer  int // max lines kept
}

// NewDebugPanel creates a new debug panel
func NewDebugPanel(enabled bool) DebugPanel {
	return DebugPanel{
		enabled: enabled,
		buffer:  100,
	}
}

// IsEnabled returns whether debug mode is enabled
func (d *DebugPanel) IsEnabled() bool {
	return d.enabled
}

// AddEvent records a dispatch event with a timestamp
func (d *DebugPanel) AddEvent(eventType string, details string) {
	if !d.enabled {
		return
	}
	line := "[" + eventType + "]"
	if details != "" {
		line += " " + details
	}
	timestamp := time.Now().Format("15:04:05.000")
	d.lines = append(d.lines, timestamp+" "+line)
	if len(d.lines) > d.buffer {
		d.lines = d.lines[len(d.lines)-d.buffer:]
	}
}

// Lines returns the recorded debug lines
func (d *DebugPanel) Lines() []string {
	return d.lines
}

// Render renders the debug panel
func (d *DebugPanel) Render(width, height int) string {
	if !d.enabled {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Render("DEBUG")

	contentHeight := height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}

	var lines []string
	startIdx := 0
	if len(d.lines) > contentHeight {
		startIdx = len(d.lines) - contentHeight
	}
	for i := startIdx; i < len(d.lines); i++ {
		line := d.lines[i]
		maxLen := width - 4
		if maxLen < 10 {
			maxLen = 10
		}
		if len(line) > maxLen {
			line = line[:maxLen-3] + "..."
		}
		lines = append(lines, line)
	}
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorYellow).
		Padding(0, 1).
		Render(title + "\n" + strings.Join(lines, "\n"))
}
