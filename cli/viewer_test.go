package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/framebench/report"
)

func testReport() report.Report {
	budgets := []report.BudgetPoint{
		{Label: "16ms (60 FPS)", Seconds: 0.016, Entities: 4200},
		{Label: "8ms", Seconds: 0.008, Entities: 2100},
	}
	fps := []report.BudgetPoint{{Label: "240 FPS", Seconds: 1.0 / 240, Entities: 1750}}
	return report.Report{
		Order: []string{"record-list", "spatial-hash"},
		Summaries: map[string]report.Summary{
			"record-list":  {Scenario: "record-list", Frames: 300, MeanCacheMissRate: 0.125, Axis: "physics_time", Budgets: budgets, FPSPoints: fps},
			"spatial-hash": {Scenario: "spatial-hash", Frames: 280, MeanCacheMissRate: 0.05, Axis: "physics_time", Budgets: budgets, FPSPoints: fps},
		},
		Failures: map[string]string{"collision-entity": "no runs found"},
	}
}

func TestViewer_SummaryAndBudgetPanes(t *testing.T) {
	m := newModel(testReport())
	_, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	if !strings.Contains(view, "record-list") || !strings.Contains(view, "mean miss rate") {
		t.Fatalf("expected summary pane for record-list, got:\n%s", view)
	}
	if !strings.Contains(view, "collision-entity: no runs found") {
		t.Fatalf("expected failure line, got:\n%s", view)
	}

	m2, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = m2.(*model)
	if m.state != viewBudgets {
		t.Fatalf("expected budgets pane after tab, got %v", m.state)
	}
	view = m.View()
	if !strings.Contains(view, "entities at physics_time budget") || !strings.Contains(view, "4200") {
		t.Fatalf("expected budget pane, got:\n%s", view)
	}
	if !strings.Contains(view, "240 FPS") || !strings.Contains(view, "1750") {
		t.Fatalf("expected frame rate lines in budget pane, got:\n%s", view)
	}

	m2, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m2.(*model).state != viewSummary {
		t.Fatalf("expected tab to switch back to the summary pane")
	}
}

func TestViewer_CursorMovesSelection(t *testing.T) {
	m := newModel(testReport())
	if s, ok := m.selected(); !ok || s.Scenario != "record-list" {
		t.Fatalf("expected first scenario selected, got %+v ok=%v", s, ok)
	}

	m2, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = m2.(*model)
	if s, ok := m.selected(); !ok || s.Scenario != "spatial-hash" {
		t.Fatalf("expected second scenario after down, got %+v ok=%v", s, ok)
	}
}

func TestViewer_Quit(t *testing.T) {
	m := newModel(testReport())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestViewer_EmptyReport(t *testing.T) {
	m := newModel(report.Report{})
	if _, ok := m.selected(); ok {
		t.Fatal("expected no selection in an empty report")
	}
	if !strings.Contains(m.View(), "framebench report") {
		t.Fatal("expected title in empty view")
	}
}
