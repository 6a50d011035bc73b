package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(stdin string) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testEnv{
		Environment: &Environment{
			Now:              func() time.Time { return time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC) },
			Stdin:            strings.NewReader(stdin),
			Stdout:           stdout,
			Stderr:           stderr,
			StdoutIsTerminal: func() bool { return false },
			Columns:          func() int { return 0 },
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// runArgs parses args and runs them against env.
func runArgs(t *testing.T, env *testEnv, args ...string) int {
	t.Helper()
	flags, positional, err := parseFlags(args)
	if err != nil {
		t.Fatalf("parseFlags(%q) error: %v", args, err)
	}
	return run(t.Context(), flags, positional, env.Environment)
}

// setupTestDir creates a temp directory with the given file structure.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range files {
		full := filepath.Join(dir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return dir
}

func readPDF(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) {
		t.Fatalf("%s is not a PDF: %q", path, data[:min(len(data), 16)])
	}
	return data
}

// ---------------------------------------------------------------------------
// TestRun_Info - Help and version
// ---------------------------------------------------------------------------

func TestRun_Help(t *testing.T) {
	t.Parallel()

	env := newTestEnv("")
	env.Columns = func() int { return 40 }

	if code := runArgs(t, env, "--help"); code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}

	out := env.stdout.String()
	for _, want := range []string{"Usage: mdpdf", "--work-period-source", "{{total_work_period}}", "Styles:", "compact,", "Exit codes:"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q", want)
		}
	}

	// The description paragraph is wrapped to the terminal width.
	desc, _, _ := strings.Cut(out, "Flags:")
	for _, line := range strings.Split(desc, "\n")[1:] {
		if len(line) > 40 {
			t.Errorf("description line longer than 40 columns: %q", line)
		}
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	env := newTestEnv("")
	if code := runArgs(t, env, "--version"); code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if got := env.stdout.String(); got != "mdpdf "+Version+"\n" {
		t.Errorf("version output = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestRun_Convert - File, directory and stdin conversion
// ---------------------------------------------------------------------------

func TestRun_SingleFile(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"doc.md": "# Hello\n\nWorld\n"})
	env := newTestEnv("")

	if code := runArgs(t, env, filepath.Join(dir, "doc.md")); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
	}

	pdf := readPDF(t, filepath.Join(dir, "doc.pdf"))
	if !bytes.Contains(pdf, []byte("(World) Tj")) {
		t.Error("PDF missing paragraph text")
	}
	if !strings.Contains(env.stdout.String(), "Created "+filepath.Join(dir, "doc.pdf")) {
		t.Errorf("stdout = %q", env.stdout)
	}
	if _, err := os.Stat(filepath.Join(dir, "doc.html")); !os.IsNotExist(err) {
		t.Error("HTML written without --html")
	}
}

func TestRun_Directory(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"docs/a.md":           "# A\n",
		"docs/sub/b.markdown": "# B\n",
		"docs/notes.txt":      "ignored",
	})
	out := filepath.Join(dir, "out")
	env := newTestEnv("")

	code := runArgs(t, env, "-w", "2", "--html", "-o", out, filepath.Join(dir, "docs"))
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
	}

	readPDF(t, filepath.Join(out, "a.pdf"))
	readPDF(t, filepath.Join(out, "sub", "b.pdf"))
	if _, err := os.Stat(filepath.Join(out, "sub", "b.html")); err != nil {
		t.Errorf("HTML companion missing: %v", err)
	}
	if !strings.Contains(env.stdout.String(), "2 succeeded, 0 failed") {
		t.Errorf("stdout = %q, want summary", env.stdout)
	}
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	env := newTestEnv("# From stdin\n")
	if code := runArgs(t, env, "-"); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
	}
	if !bytes.HasPrefix(env.stdout.Bytes(), []byte("%PDF-1.4\n")) {
		t.Errorf("stdout is not a PDF: %q", env.stdout.Bytes()[:min(env.stdout.Len(), 16)])
	}
}

func TestRun_StdinToFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "piped.pdf")
	env := newTestEnv("# Piped\n")
	if code := runArgs(t, env, "--html", "-o", out, "-"); code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
	}
	readPDF(t, out)
	if _, err := os.Stat(filepath.Join(filepath.Dir(out), "piped.html")); err != nil {
		t.Errorf("HTML companion missing: %v", err)
	}
}

func TestRun_Config(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"cv.md":      "Experience: {{work_period: start=\"2020-01\", end=\"present\"}}\n",
		"mdpdf.yaml": "layout:\n  pageSize: letter\n",
	})
	env := newTestEnv("")

	code := runArgs(t, env, "-c", filepath.Join(dir, "mdpdf.yaml"), filepath.Join(dir, "cv.md"))
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
	}

	pdf := readPDF(t, filepath.Join(dir, "cv.pdf"))
	if !bytes.Contains(pdf, []byte("/MediaBox [0 0 612.00 792.00]")) {
		t.Error("config page size not applied")
	}
	if !bytes.Contains(pdf, []byte("(Experience: 5 years, 6 months) Tj")) {
		t.Error("work period not expanded with the environment clock")
	}
}

func TestRun_FlagOverridesConfig(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"doc.md":     "# Doc\n",
		"mdpdf.yaml": "layout:\n  pageSize: letter\n",
	})
	env := newTestEnv("")

	code := runArgs(t, env, "-c", filepath.Join(dir, "mdpdf.yaml"), "--page-size", "legal", filepath.Join(dir, "doc.md"))
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
	}
	if pdf := readPDF(t, filepath.Join(dir, "doc.pdf")); !bytes.Contains(pdf, []byte("/MediaBox [0 0 612.00 1008.00]")) {
		t.Error("--page-size did not override config")
	}
}

func TestRun_Warnings(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"doc.md": "Since {{work_period: start=\"later\", end=\"present\"}}\n"})

	t.Run("printed", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("")
		if code := runArgs(t, env, "-o", filepath.Join(t.TempDir(), "a.pdf"), filepath.Join(dir, "doc.md")); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
		}
		if !strings.Contains(env.stderr.String(), "warning: ") {
			t.Errorf("stderr = %q, want a warning", env.stderr)
		}
	})

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("")
		if code := runArgs(t, env, "-q", "-o", filepath.Join(t.TempDir(), "b.pdf"), filepath.Join(dir, "doc.md")); code != ExitSuccess {
			t.Fatalf("exit code = %d, stderr: %s", code, env.stderr)
		}
		if env.stderr.Len() != 0 || env.stdout.Len() != 0 {
			t.Errorf("quiet run produced output: stdout %q, stderr %q", env.stdout, env.stderr)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRun_Errors - Exit codes for failures
// ---------------------------------------------------------------------------

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"doc.md":      "# Doc\n",
		"notes.txt":   "text",
		"empty/.keep": "",
	})

	tests := []struct {
		name     string
		args     []string
		terminal bool
		want     int
	}{
		{"no input", nil, false, ExitIO},
		{"missing file", []string{filepath.Join(dir, "missing.md")}, false, ExitIO},
		{"no markdown in directory", []string{filepath.Join(dir, "empty")}, false, ExitIO},
		{"wrong extension", []string{filepath.Join(dir, "notes.txt")}, false, ExitUsage},
		{"two inputs", []string{filepath.Join(dir, "doc.md"), filepath.Join(dir, "doc.md")}, false, ExitUsage},
		{"unknown page size", []string{"--page-size", "a3", filepath.Join(dir, "doc.md")}, false, ExitUsage},
		{"margins too wide", []string{"--margin", "400", filepath.Join(dir, "doc.md")}, false, ExitUsage},
		{"negative workers", []string{"-w", "-1", filepath.Join(dir, "doc.md")}, false, ExitUsage},
		{"missing config", []string{"-c", filepath.Join(dir, "none.yaml"), filepath.Join(dir, "doc.md")}, false, ExitUsage},
		{"pdf to terminal", []string{"-"}, true, ExitUsage},
		{"unknown style", []string{"--html", "--style", "nonexistent", filepath.Join(dir, "doc.md")}, false, ExitUsage},
		{"missing stylesheet file", []string{"--html", "--style", filepath.Join(dir, "none.css"), filepath.Join(dir, "doc.md")}, false, ExitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv("# x")
			env.StdoutIsTerminal = func() bool { return tt.terminal }

			if code := runArgs(t, env, tt.args...); code != tt.want {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.want, env.stderr)
			}
			if env.stderr.Len() == 0 {
				t.Error("expected an error message on stderr")
			}
		})
	}
}

func TestRun_Style(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"doc.md":             "# Doc\n",
		"theme/styles/x.css": "body { color: teal; }",
		"print.css":          "body { color: olive; }",
	})
	cfgPath := filepath.Join(dir, "style.yaml")
	cfg := "html: true\nstyle: x\nassets:\n  basePath: " + strconv.Quote(filepath.Join(dir, "theme")) + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"built-in default", []string{"--html"}, "max-width: 46em"},
		{"built-in by name", []string{"--html", "--style", "compact"}, "line-height: 1.35"},
		{"css file", []string{"--html", "--style", filepath.Join(dir, "print.css")}, "color: olive"},
		{"custom directory", []string{"-c", cfgPath}, "color: teal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := filepath.Join(t.TempDir(), "doc.pdf")
			env := newTestEnv("")
			args := append(tt.args, "-o", out, filepath.Join(dir, "doc.md"))
			if code := runArgs(t, env, args...); code != ExitSuccess {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, env.stderr)
			}
			html, err := os.ReadFile(filepath.Join(filepath.Dir(out), "doc.html"))
			if err != nil {
				t.Fatalf("reading HTML: %v", err)
			}
			if !strings.Contains(string(html), tt.want) {
				t.Errorf("HTML stylesheet missing %q", tt.want)
			}
		})
	}
}

func TestRun_DirectoryToPDFFile(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"a.md":     "# A\n",
		"b.md":     "# B\n",
		"sub/c.md": "# C\n",
	})
	out := filepath.Join(t.TempDir(), "all.pdf")
	env := newTestEnv("")

	if code := runArgs(t, env, "-o", out, dir); code != ExitUsage {
		t.Errorf("exit code = %d, want %d (stderr: %s)", code, ExitUsage, env.stderr)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("PDF written for a directory input with a file output")
	}
	if !strings.Contains(env.stderr.String(), "hint:") {
		t.Errorf("stderr should carry a hint, got %q", env.stderr)
	}
	if strings.Contains(env.stdout.String(), "Created") {
		t.Errorf("no file should be reported as created, got %q", env.stdout)
	}
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"doc.md": "# Doc\n"})
	env := newTestEnv("")

	flags, positional, err := parseFlags([]string{filepath.Join(dir, "doc.md")})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if code := run(ctx, flags, positional, env.Environment); code != ExitGeneral {
		t.Errorf("exit code = %d, want %d", code, ExitGeneral)
	}
	if _, err := os.Stat(filepath.Join(dir, "doc.pdf")); !os.IsNotExist(err) {
		t.Error("PDF written after cancellation")
	}
}
