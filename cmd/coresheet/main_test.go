package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coresheet/internal/sheet"
)

type cliTestEnv struct {
	configPath string
	dataDir    string
	outputDir  string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		configPath: filepath.Join(base, "config.toml"),
		dataDir:    filepath.Join(base, "data"),
		outputDir:  filepath.Join(base, "output"),
		baseDir:    base,
	}

	content := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = %q
output_dir = %q

[logging]
format = "console"
level = "error"

[print]
command = ""
sheet_title = "Personal Core Sheet"
`, env.dataDir, filepath.Join(base, "logs"), env.outputDir)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func mustRunCLI(t *testing.T, env *cliTestEnv, args ...string) string {
	t.Helper()
	out, stderr, err := runCLI(t, env, args...)
	if err != nil {
		t.Fatalf("%v failed: %v\nstderr: %s", args, err, stderr)
	}
	return out
}

func showRecord(t *testing.T, env *cliTestEnv) sheet.Record {
	t.Helper()
	out := mustRunCLI(t, env, "show", "--json")
	var record sheet.Record
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("decode show --json output: %v\noutput: %s", err, out)
	}
	return record
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestCLISetShowValidateFlow(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRunCLI(t, env, "set", "vision", "0", "Ship the product")
	requireContains(t, out, "Vision 1 saved (16/30)")

	out = mustRunCLI(t, env, "set", "slogan", "挑戦し続ける")
	requireContains(t, out, "Engine slogan saved (6/30)")

	out = mustRunCLI(t, env, "set", "engine", "2", "Curiosity")
	requireContains(t, out, "Engine 3 saved (9/30)")

	out = mustRunCLI(t, env, "set", "episode", "1", "from", "2019")
	requireContains(t, out, "Episode 2 from saved (4/8)")

	out = mustRunCLI(t, env, "set", "episode", "1", "text", "Rebuilt everything from scratch")
	requireContains(t, out, "Episode 2 text saved (31/80)")

	record := showRecord(t, env)
	if record.Visions[0] != "Ship the product" {
		t.Fatalf("vision not persisted: %q", record.Visions[0])
	}
	if record.EngineSlogan != "挑戦し続ける" {
		t.Fatalf("slogan not persisted: %q", record.EngineSlogan)
	}
	if record.Engines[2] != "Curiosity" {
		t.Fatalf("engine not persisted: %q", record.Engines[2])
	}
	if record.Episodes[1].From != "2019" || record.Episodes[1].Text != "Rebuilt everything from scratch" {
		t.Fatalf("episode not persisted: %+v", record.Episodes[1])
	}

	out = mustRunCLI(t, env, "show")
	requireContains(t, out, "Ship the product")
	requireContains(t, out, "Sheet is ready to print")

	out = mustRunCLI(t, env, "validate")
	requireContains(t, out, "Sheet is valid")
}

func TestCLIValidateReportsViolation(t *testing.T) {
	env := setupCLITestEnv(t)

	long := strings.Repeat("a", 31)
	out := mustRunCLI(t, env, "set", "slogan", long)
	requireContains(t, out, "Engine slogan saved (31/30 OVER)")

	_, _, err := runCLI(t, env, "validate")
	if err == nil {
		t.Fatal("expected validate to fail")
	}
	if err.Error() != "Engine slogan exceeds the 30 character limit" {
		t.Fatalf("unexpected validation error: %v", err)
	}

	out = mustRunCLI(t, env, "show")
	requireContains(t, out, "Engine slogan exceeds the 30 character limit")
}

func TestCLIValidatePrecedence(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "set", "slogan", strings.Repeat("a", 31))
	mustRunCLI(t, env, "set", "vision", "1", strings.Repeat("b", 31))

	_, _, err := runCLI(t, env, "validate")
	if err == nil {
		t.Fatal("expected validate to fail")
	}
	if err.Error() != "Vision 2 exceeds the 30 character limit" {
		t.Fatalf("expected the vision violation to win, got: %v", err)
	}
}

func TestCLISetRejectsBadArguments(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "set", "vision", "3", "out of range"); err == nil {
		t.Fatal("expected out-of-range vision index to fail")
	}
	if _, _, err := runCLI(t, env, "set", "vision", "x", "bad index"); err == nil {
		t.Fatal("expected non-numeric index to fail")
	}
	if _, _, err := runCLI(t, env, "set", "episode", "0", "title", "bad field"); err == nil {
		t.Fatal("expected unknown episode field to fail")
	}

	record := showRecord(t, env)
	if record != sheet.NewRecord() {
		t.Fatalf("rejected writes must not persist, got %+v", record)
	}
}

func TestCLIClearResetsSheet(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "set", "vision", "0", "something")
	mustRunCLI(t, env, "set", "episode", "5", "text", "last episode")

	out := mustRunCLI(t, env, "clear")
	requireContains(t, out, "Sheet cleared")

	record := showRecord(t, env)
	if record != sheet.NewRecord() {
		t.Fatalf("expected empty record after clear, got %+v", record)
	}
}

func TestCLIPrintWritesArtifact(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "set", "vision", "0", "Ship the product")

	out := mustRunCLI(t, env, "print")
	requireContains(t, out, "Rendered print artifact:")

	entries, err := os.ReadDir(env.outputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	var found bool
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "core-sheet-") && strings.HasSuffix(entry.Name(), ".xlsx") {
			found = true
		}
	}
	if !found {
		t.Fatalf("no artifact written to %s", env.outputDir)
	}
}

func TestCLIPrintHonorsOutputFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	altDir := filepath.Join(env.baseDir, "alt-output")

	out := mustRunCLI(t, env, "print", "--output", altDir)
	requireContains(t, out, altDir)

	entries, err := os.ReadDir(altDir)
	if err != nil {
		t.Fatalf("read alt output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one artifact in %s, got %d", altDir, len(entries))
	}
}

func TestCLIPrintBlockedByViolation(t *testing.T) {
	env := setupCLITestEnv(t)

	mustRunCLI(t, env, "set", "episode", "2", "from", strings.Repeat("x", 11))

	_, _, err := runCLI(t, env, "print")
	if err == nil {
		t.Fatal("expected print to fail on invalid sheet")
	}
	if err.Error() != `Episode 3 "from" exceeds the 8 character limit` {
		t.Fatalf("unexpected print error: %v", err)
	}

	if entries, readErr := os.ReadDir(env.outputDir); readErr == nil && len(entries) > 0 {
		t.Fatalf("blocked print must not write artifacts, found %d", len(entries))
	}
}

func TestCLIConfigInit(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "nested", "coresheet.toml")

	out := mustRunCLI(t, env, "config", "init", "--path", target)
	requireContains(t, out, "Wrote sample configuration to "+target)

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, _, err := runCLI(t, env, "config", "init", "--path", target); err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
	mustRunCLI(t, env, "config", "init", "--path", target, "--overwrite")
}

func TestCLIConfigValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out := mustRunCLI(t, env, "config", "validate")
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Configuration valid")

	out = mustRunCLI(t, env, "config", "path")
	requireContains(t, out, env.configPath)

	out = mustRunCLI(t, env, "config", "show")
	requireContains(t, out, "data_dir")
	requireContains(t, out, env.dataDir)
}
