// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package console renders the in-place terminal countdown shown between
// upload cycles.
package console

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var countdownStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("6")).
	Bold(true)

// Overwrite rewrites the current terminal line with line: carriage return,
// erase-to-end-of-line, then the new content. No trailing newline, so
// successive calls animate in place.
func Overwrite(w io.Writer, line string) {
	fmt.Fprintf(w, "\r\x1b[K%s", line)
}

// FormatCountdown renders the time remaining until the next cycle as a
// styled "next cycle in HH:MM:SS" line. Negative durations clamp to zero.
func FormatCountdown(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	remaining = remaining.Round(time.Second)

	hours := int(remaining.Hours())
	minutes := int(remaining.Minutes()) % 60
	seconds := int(remaining.Seconds()) % 60

	return countdownStyle.Render(fmt.Sprintf("next cycle in %02d:%02d:%02d", hours, minutes, seconds))
}
