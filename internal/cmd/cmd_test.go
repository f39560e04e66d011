package cmd

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sky-flux/grist/yeast"
)

// runGrist runs the command tree against a config path that does not exist, so
// every test sees the built-in defaults.
func runGrist(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	args = append(args, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	code = run(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(got, w) {
			t.Errorf("output missing %q:\n%s", w, got)
		}
	}
}

// --- starter ---

func TestStarterTable(t *testing.T) {
	out, _, code := runGrist(t, "starter", "--cells", "100", "--target", "2000", "--max-gallons", "3", "--max-growth", "4")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	assertContains(t, out,
		"Limiter",
		"0.55", "2.20", "1.62",
		"max growth ratio", "target",
		"Reaches 2,000.0 B in 3 step(s)",
	)
}

func TestStarterLiters(t *testing.T) {
	out, _, code := runGrist(t, "starter", "--cells", "100", "--target", "2000", "--max-gallons", "3", "--max-growth", "4", "--liters")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	// 0.5512 gal is 2.0866 L.
	assertContains(t, out, "Volume (L)", "2.09")
}

func TestStarterJSON(t *testing.T) {
	out, _, code := runGrist(t, "starter", "--cells", "100", "--target", "819", "--max-gallons", "1", "--max-growth", "10", "--json")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	var report starterReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if len(report.Steps) != 2 {
		t.Fatalf("len(steps) = %d, want 2", len(report.Steps))
	}
	if report.Steps[0].Limiter != yeast.LimitVolume || report.Steps[1].Limiter != yeast.LimitTarget {
		t.Errorf("limiters = %v, %v, want volume then target", report.Steps[0].Limiter, report.Steps[1].Limiter)
	}
	if !report.Summary.Reached || report.Summary.Steps != 2 {
		t.Errorf("summary = %+v, want 2 steps reaching the target", report.Summary)
	}
	if report.Planner.MaxGrowthPerStep != 10 || report.Planner.Gravity != yeast.DefaultStarterGravity {
		t.Errorf("planner = %+v, want flag and default values merged", report.Planner)
	}
}

func TestStarterJSONEmptyPlan(t *testing.T) {
	out, _, code := runGrist(t, "starter", "--cells", "500", "--target", "400", "--json")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	assertContains(t, out, `"steps": []`, `"reached": true`)
}

func TestStarterNotNeeded(t *testing.T) {
	out, _, code := runGrist(t, "starter", "--cells", "500", "--target", "400")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	assertContains(t, out, "No starter needed")
}

func TestStarterCheck(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"reachable", []string{"--cells", "100", "--target", "819"}, 0},
		{"already enough", []string{"--cells", "900", "--target", "819"}, 0},
		{"step cap", []string{"--cells", "100", "--target", "100000", "--max-gallons", "0.1", "--max-growth", "100"}, ExitFailure},
		{"no growth", []string{"--cells", "100", "--target", "1000", "--max-growth", "1"}, ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"starter", "--check"}, tt.args...)
			out, errOut, code := runGrist(t, args...)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d", code, tt.code)
			}
			if out != "" || errOut != "" {
				t.Errorf("--check printed stdout %q stderr %q, want nothing", out, errOut)
			}
		})
	}
}

func TestStarterShortfall(t *testing.T) {
	out, _, code := runGrist(t, "starter", "--cells", "100", "--target", "1000", "--max-growth", "1")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	assertContains(t, out, "out of reach")
}

func TestStarterBadPlanner(t *testing.T) {
	_, errOut, code := runGrist(t, "starter", "--cells", "100", "--target", "819", "--gravity", "0.9")
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	assertContains(t, errOut, "invalid planner config")
}

func TestStarterCheckMissingFlag(t *testing.T) {
	// A bad invocation must not look like an unreachable target.
	_, errOut, code := runGrist(t, "starter", "--check", "--target", "1000")
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	assertContains(t, errOut, "cells")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"required flag", []string{"starter", "--cells", "100"}},
		{"one of group", []string{"pitch", "--liters", "20"}},
		{"exclusive group", []string{"pitch", "--liters", "20", "--gallons", "5", "--plato", "12"}},
		{"fg and attenuation", []string{"abv", "--og", "1.050", "--fg", "1.010", "--attenuation", "75"}},
		{"positional arg", []string{"abv", "--og", "1.050", "--fg", "1.010", "extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, code := runGrist(t, tt.args...)
			if code != ExitUsage {
				t.Errorf("exit code = %d, want %d", code, ExitUsage)
			}
		})
	}
}

func TestStarterViability(t *testing.T) {
	out, _, code := runGrist(t, "starter", "--cells", "100", "--target", "819",
		"--mfg", "2019-10-01", "--now", "2019-11-07", "--json")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	var report starterReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	// 37 days at 0.7% per day leaves 74.1%.
	if math.Abs(report.Cells-74.1) > 1e-9 {
		t.Errorf("cells = %v, want 74.1", report.Cells)
	}
	if len(report.Steps) == 0 || report.Steps[0].InitialCells != report.Cells {
		t.Errorf("steps = %+v, want the plan to start from the viable cells", report.Steps)
	}
	if !report.Summary.Reached {
		t.Errorf("summary = %+v, want target reached", report.Summary)
	}
}

func TestStarterBadNow(t *testing.T) {
	_, _, code := runGrist(t, "starter", "--cells", "100", "--target", "819", "--mfg", "2019-10-01", "--now", "tomorrow")
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}

func TestStarterBadMfg(t *testing.T) {
	_, _, code := runGrist(t, "starter", "--cells", "100", "--target", "819", "--mfg", "last week")
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}

func TestStarterDebugLog(t *testing.T) {
	_, errOut, code := runGrist(t, "--debug", "starter", "--cells", "100", "--target", "819")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	assertContains(t, errOut, "starter step", "limiter=")
}

// --- config ---

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[starter]\nmax_gallons = 3\nmax_growth_per_step = 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	code := run([]string{"starter", "--cells", "100", "--target", "2000", "--config", path}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr %s", code, errOut.String())
	}
	assertContains(t, out.String(), "in 3 step(s)")
}

func TestConfigFileUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[starter]\nmax_litres = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	code := run([]string{"version", "--config", path}, &out, &errOut)
	if code != ExitFailure {
		t.Errorf("exit code = %d, want %d", code, ExitFailure)
	}
	assertContains(t, errOut.String(), "max_litres")
}

// --- viability ---

func TestViability(t *testing.T) {
	out, _, code := runGrist(t, "viability", "--cells", "100", "--mfg", "2019-10-01", "--now", "2019-11-07")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	assertContains(t, out, "74.1%", "74.1 B of 100.0 B")
}

func TestViabilityTotal(t *testing.T) {
	out, _, code := runGrist(t, "viability",
		"--cells", "100", "--mfg", "2019-10-01",
		"--cells", "100", "--mfg", "2019-11-07",
		"--now", "2019-11-07")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	assertContains(t, out, "total", "174.1 B")
}

func TestViabilityMismatch(t *testing.T) {
	_, errOut, code := runGrist(t, "viability", "--cells", "100", "--cells", "50", "--mfg", "2019-10-01")
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	assertContains(t, errOut, "length mismatch")
}

// --- pitch, ibu, og, abv ---

func TestPitch(t *testing.T) {
	out, _, code := runGrist(t, "pitch", "--rate", "0.75", "--liters", "20", "--plato", "12")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	assertContains(t, out, "180", "20.0 L", "12.0 °P")
}

func TestIBU(t *testing.T) {
	tests := []struct {
		name string
		hops []string
		want string
	}{
		{"single", []string{"--hop", "1:60:5"}, "17.3 IBU"},
		{"two additions", []string{"--hop", "1:60:5", "--hop", "1:15:5"}, "25.8 IBU"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"ibu", "--gravity", "1.050", "--gallons", "5"}, tt.hops...)
			out, _, code := runGrist(t, args...)
			if code != 0 {
				t.Fatalf("exit code = %d, want 0", code)
			}
			assertContains(t, out, tt.want)
		})
	}
}

func TestIBUBadHop(t *testing.T) {
	_, _, code := runGrist(t, "ibu", "--gravity", "1.050", "--hop", "1:60")
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}

func TestOriginalGravity(t *testing.T) {
	out, _, code := runGrist(t, "og", "--malt", "9:37:2", "--gallons", "5", "--efficiency", "72")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	assertContains(t, out, "OG   1.048", "SRM  3.6")
}

func TestABV(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"final gravity", []string{"--og", "1.050", "--fg", "1.010"}, "ABV  5.24%"},
		{"attenuation", []string{"--og", "1.050", "--attenuation", "80"}, "FG   1.010"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, code := runGrist(t, append([]string{"abv"}, tt.args...)...)
			if code != 0 {
				t.Fatalf("exit code = %d, want 0", code)
			}
			assertContains(t, out, tt.want)
		})
	}
}

func TestUnknownFlag(t *testing.T) {
	_, _, code := runGrist(t, "abv", "--og", "1.050", "--gf", "1.010")
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}

func TestVersion(t *testing.T) {
	out, _, code := runGrist(t, "version")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	assertContains(t, out, "grist version "+Version)
}

// --- helpers ---

func TestParseFields(t *testing.T) {
	got, err := parseFields("1:60:5.5", 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 60 || got[2] != 5.5 {
		t.Errorf("parseFields = %v, want [1 60 5.5]", got)
	}

	for _, s := range []string{"1:60", "1:60:5:5", "a:60:5", ""} {
		if _, err := parseFields(s, 3, 3); err == nil {
			t.Errorf("parseFields(%q) = nil error, want usage error", s)
		}
	}
}

func TestCellsString(t *testing.T) {
	if got := cellsString(1188.6); got != "1,188.6 B" {
		t.Errorf("cellsString = %q, want %q", got, "1,188.6 B")
	}
}
