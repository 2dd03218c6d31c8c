// Package cli provides the interactive terminal viewer for comparison
// reports. It lets the user walk through scenarios in a table and inspect
// the budget breakdown of the highlighted one.
package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/framebench/report"
)

// viewState represents which pane the viewer shows below the table.
type viewState int

const (
	viewSummary viewState = iota // viewSummary shows cache statistics of the selected scenario.
	viewBudgets                  // viewBudgets shows budget entity counts of the selected scenario.
)

var (
	titleStyle  = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	detailStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// model is the Bubble Tea model of the report viewer.
type model struct {
	report report.Report
	table  table.Model
	state  viewState

	width, height int
}

// newModel builds the viewer model for rep.
func newModel(rep report.Report) *model {
	headers := report.Headers(rep)
	rows := report.Rows(rep)

	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		w := lipgloss.Width(h)
		for _, r := range rows {
			if cw := lipgloss.Width(r[i]); cw > w {
				w = cw
			}
		}
		cols[i] = table.Column{Title: h, Width: w + 1}
	}
	trows := make([]table.Row, len(rows))
	for i, r := range rows {
		trows[i] = table.Row(r)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(trows),
		table.WithFocused(true),
		table.WithHeight(min(len(trows)+1, 12)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return &model{report: rep, table: t, state: viewSummary}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd { return nil }

// Update handles key presses and window resizes.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "tab":
			if m.state == viewSummary {
				m.state = viewBudgets
			} else {
				m.state = viewSummary
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table, the detail pane and the key help.
func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("framebench report"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if sum, ok := m.selected(); ok {
		b.WriteString(detailStyle.Render(m.detail(sum)))
		b.WriteString("\n")
	}
	for _, name := range slices.Sorted(maps.Keys(m.report.Failures)) {
		b.WriteString(failStyle.Render(fmt.Sprintf("%s: %s", name, m.report.Failures[name])))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(" ↑/↓ select • tab switch pane • q quit"))
	return b.String()
}

// selected returns the summary under the table cursor.
func (m *model) selected() (report.Summary, bool) {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return report.Summary{}, false
	}
	return m.report.Summary(row[0])
}

func (m *model) detail(s report.Summary) string {
	var lines []string
	switch m.state {
	case viewBudgets:
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%s: entities at %s budget", s.Scenario, s.Axis)))
		for _, bp := range s.Budgets {
			lines = append(lines, fmt.Sprintf("  %-16s %10.0f", bp.Label, bp.Entities))
		}
		if len(s.FPSPoints) > 0 {
			lines = append(lines, labelStyle.Render("entities at frame rate"))
			for _, p := range s.FPSPoints {
				lines = append(lines, fmt.Sprintf("  %-16s %10.0f", p.Label, p.Entities))
			}
		}
	default:
		lines = append(lines,
			labelStyle.Render(s.Scenario),
			fmt.Sprintf("  frames              %d", s.Frames),
			fmt.Sprintf("  max entities        %.0f", s.MaxEntities),
			fmt.Sprintf("  mean miss rate      %.4f", s.MeanCacheMissRate),
			fmt.Sprintf("  mean cache refs     %.0f", s.MeanCacheReferences),
			fmt.Sprintf("  frame time p50/p95  %.3f / %.3f ms", s.FrameTimeP50*1000, s.FrameTimeP95*1000),
		)
	}
	return strings.Join(lines, "\n")
}

// StartViewer runs the interactive viewer for rep and blocks until the
// user quits.
func StartViewer(rep report.Report) error {
	p := tea.NewProgram(newModel(rep), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running report viewer: %w", err)
	}
	return nil
}
