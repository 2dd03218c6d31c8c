// report/render.go
// Package: report
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numberStyle  = cellStyle.Align(lipgloss.Right)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Headers returns the column titles shared by the table renderers. Budget
// and frame rate columns come from the first summary; every summary of one
// report is built from the same lists.
func Headers(r Report) []string {
	h := []string{"Scenario", "Frames", "Miss %", "Cache refs", "p50 frame", "p95 frame"}
	if ordered := r.Ordered(); len(ordered) > 0 {
		for _, b := range ordered[0].Budgets {
			h = append(h, "@ "+b.Label)
		}
		for _, p := range ordered[0].FPSPoints {
			h = append(h, "@ "+p.Label)
		}
	}
	return h
}

// Rows returns one formatted row per summary, in configured order.
func Rows(r Report) [][]string {
	var rows [][]string
	for _, s := range r.Ordered() {
		row := []string{
			s.Scenario,
			fmt.Sprintf("%d", s.Frames),
			fmt.Sprintf("%.3f", s.MeanCacheMissRate),
			fmt.Sprintf("%.0f", s.MeanCacheReferences),
			formatSeconds(s.FrameTimeP50),
			formatSeconds(s.FrameTimeP95),
		}
		for _, b := range s.Budgets {
			row = append(row, fmt.Sprintf("%.0f", b.Entities))
		}
		for _, p := range s.FPSPoints {
			row = append(row, fmt.Sprintf("%.0f", p.Entities))
		}
		rows = append(rows, row)
	}
	return rows
}

// RenderTable renders r as a bordered terminal table followed by any
// scenario failures.
func RenderTable(r Report) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(Headers(r)...).
		Rows(Rows(r)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")

	if len(r.Failures) > 0 {
		names := make([]string, 0, len(r.Failures))
		for name := range r.Failures {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(failureStyle.Render(fmt.Sprintf("%s: %s", name, r.Failures[name])))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatSeconds(s float64) string {
	return fmt.Sprintf("%.3fms", s*1000)
}
