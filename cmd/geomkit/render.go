package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geomkit/internal/batch"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	sectionStyle = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
)

// renderMeasurements renders a fixed-width table of batch results. Real
// values use two-decimal formatting, matching the describe() contract.
func renderMeasurements(title string, results []batch.Measurement) string {
	headers := []string{"Name", "Kind", "Perimeter", "Area"}

	rows := make([][]string, 0, len(results))
	for _, m := range results {
		area := fmt.Sprintf("%.2f", m.Area)
		if m.Err != nil {
			area = "error: " + m.Err.Error()
		}
		rows = append(rows, []string{
			m.Name,
			m.Kind,
			fmt.Sprintf("%.2f", m.Perimeter),
			area,
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")

	for i, h := range headers {
		sb.WriteString(headerStyle.Width(widths[i] + 2).Render(h))
	}
	sb.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			sb.WriteString(cellStyle.Width(widths[i] + 2).Render(cell))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
