package framebench

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mwiater/framebench/report"
)

func TestRoot_SubcommandsPresent(t *testing.T) {
	have := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
		if c.Name() == "list" {
			sub := map[string]bool{}
			for _, sc := range c.Commands() {
				sub[sc.Name()] = true
			}
			if !sub["scenarios"] || !sub["commands"] {
				t.Fatalf("list subcommands missing: %v", sub)
			}
		}
	}
	for _, want := range []string{"export", "report", "query", "list", "config"} {
		if !have[want] {
			t.Fatalf("missing subcommand %s", want)
		}
	}
}

func TestCommands_HaveDescriptions(t *testing.T) {
	var check func(*cobra.Command)
	check = func(cmd *cobra.Command) {
		if cmd.Short == "" || cmd.Long == "" {
			t.Fatalf("command %s missing Short/Long", cmd.Name())
		}
		for _, sc := range cmd.Commands() {
			if sc.Name() == "help" || sc.Name() == "completion" {
				continue
			}
			check(sc)
		}
	}
	check(rootCmd)
}

func TestListCommands_PrintsTree(t *testing.T) {
	var buf bytes.Buffer
	listAllCommands(&buf, rootCmd)
	out := buf.String()
	if !strings.Contains(out, "framebench report") {
		t.Fatalf("expected command path in output, got: %s", out)
	}
	if !strings.Contains(out, "    framebench list scenarios") {
		t.Fatalf("expected nested command indented twice, got: %s", out)
	}
}

// writeFixture lays out a results tree with two variant B scenarios and a
// config file pointing at it. It returns the config path.
func writeFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for s, name := range []string{"record-list", "baseline-no-physics"} {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		for r := 0; r < 2; r++ {
			var b strings.Builder
			b.WriteString("frame,nb of entities,FPS,frame length,physics length,refs,misses,ratio\n")
			for i := 0; i < 10; i++ {
				entities := (i + 1) * 100 * (s + 1)
				ft := float64(entities) / 100000
				fmt.Fprintf(&b, "%d,%d,%f,%f,%f,%d.000000,%d.000000,%f\n", i, entities, 1/ft, ft, ft/4, 5000, 50, 0.01)
			}
			if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("run-%d.txt", r)), []byte(b.String()), 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}

	cfg := fmt.Sprintf(`results_dir: %s
schema: b
skip_header: true
scenarios:
  - {name: record-list, path: record-list}
  - {name: baseline-no-physics, path: baseline-no-physics}
`, root)
	path := filepath.Join(root, "framebench.yaml")
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf, errBuf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	if err != nil {
		t.Logf("stderr: %s", errBuf.String())
	}
	return buf.String(), err
}

func TestExportCmd(t *testing.T) {
	cfgPath := writeFixture(t)
	out, err := execute(t, "--config", cfgPath, "export")
	if err != nil {
		t.Fatalf("export: %v\n%s", err, out)
	}

	root := filepath.Dir(cfgPath)
	for name, rows := range map[string]int{"record-list": 5, "baseline-no-physics": 2} {
		data, err := os.ReadFile(filepath.Join(root, name, name+".csv"))
		if err != nil {
			t.Fatalf("reading export of %s: %v", name, err)
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != rows+1 {
			t.Fatalf("%s: expected %d rows plus header, got %d", name, rows, len(lines)-1)
		}
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output: %s", name, out)
		}
	}
}

func TestReportCmd_JSON(t *testing.T) {
	cfgPath := writeFixture(t)
	out, err := execute(t, "--config", cfgPath, "report", "--format", "json", "--interactive=false")
	if err != nil {
		t.Fatalf("report: %v\n%s", err, out)
	}

	var rep report.Report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decoding report: %v\n%s", err, out)
	}
	if len(rep.Order) != 2 || rep.Order[0] != "record-list" {
		t.Fatalf("unexpected order: %v", rep.Order)
	}
	sum := rep.Summaries["record-list"]
	if len(sum.Budgets) != 5 {
		t.Fatalf("expected 5 budgets, got %d", len(sum.Budgets))
	}
	// physics = entities/400000 and the series spans 100..1000 entities.
	if got := sum.Budgets[3].Entities; got < 799.999 || got > 800.001 {
		t.Fatalf("expected 800 entities at 2ms, got %v", got)
	}
}

func TestReportCmd_Interactive(t *testing.T) {
	original := startViewer
	defer func() { startViewer = original }()

	var got report.Report
	startViewer = func(rep report.Report) error {
		got = rep
		return nil
	}

	cfgPath := writeFixture(t)
	if out, err := execute(t, "--config", cfgPath, "report", "--format", "table", "--interactive"); err != nil {
		t.Fatalf("report: %v\n%s", err, out)
	}
	if len(got.Summaries) != 2 {
		t.Fatalf("expected the viewer to receive 2 summaries, got %d", len(got.Summaries))
	}
}

func TestQueryCmd(t *testing.T) {
	cfgPath := writeFixture(t)
	out, err := execute(t, "--config", cfgPath, "query", "--scenario", "record-list", "--axis", "frame_time", "--seconds", "0.005", "--fps", "200")
	if err != nil {
		t.Fatalf("query: %v\n%s", err, out)
	}
	if strings.Count(out, "500 entities") != 2 {
		t.Fatalf("expected 500 entities for both targets, got:\n%s", out)
	}
}

func TestConfigShowCmd(t *testing.T) {
	cfgPath := writeFixture(t)
	out, err := execute(t, "--config", cfgPath, "config", "show", "--no-color")
	if err != nil {
		t.Fatalf("config show: %v\n%s", err, out)
	}
	if !strings.Contains(out, "baseline-no-physics") {
		t.Fatalf("expected scenarios in output, got:\n%s", out)
	}
}
