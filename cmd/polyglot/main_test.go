package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- E2E tests ---
// These exercise the full pipeline: scan → group → aggregate → render.

// writeTree creates the standard fixture: two Go files, a Makefile, and
// a Markdown readme. Four files total: Go 50%, Makefile 25%, Markdown 25%.
func writeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"a.go":      "package main\n",
		"b.go":      "package main\n",
		"Makefile":  "all:\n\techo ok\n",
		"README.md": "# readme\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestRun_Summary(t *testing.T) {
	dir := writeTree(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{dir}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	// Descending by count; equal counts ordered by name.
	want := "50.00% Go\n25.00% Makefile\n25.00% Markdown\n"
	if stdout.String() != want {
		t.Errorf("summary mismatch\nwant: %q\ngot:  %q", want, stdout.String())
	}
}

func TestRun_FileBreakdown(t *testing.T) {
	dir := writeTree(t)
	chdir(t, dir)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-b", "."}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	want := "50.00% Go\n25.00% Makefile\n25.00% Markdown\n" +
		"\n" +
		"Go (2)\na.go\nb.go\n\n" +
		"Makefile (1)\nMakefile\n\n" +
		"Markdown (1)\nREADME.md\n\n"
	if stdout.String() != want {
		t.Errorf("breakdown mismatch\nwant: %q\ngot:  %q", want, stdout.String())
	}
}

func TestRun_FileBreakdownCondensed(t *testing.T) {
	dir := writeTree(t)
	chdir(t, dir)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-b", "-c", "."}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	output := stdout.String()
	if !strings.Contains(output, "Go (2)\nMakefile (1)\nMarkdown (1)\n") {
		t.Errorf("expected condensed headers only, got:\n%s", output)
	}
	if strings.Contains(output, "a.go") {
		t.Errorf("condensed output should not list files, got:\n%s", output)
	}
}

func TestRun_StrategyBreakdown(t *testing.T) {
	dir := writeTree(t)
	chdir(t, dir)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-s", "."}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	output := stdout.String()

	// The two .go files are decided by their unique extension; the
	// Makefile by its filename.
	if !strings.Contains(output, "Extension (2)\na.go (Go)\nb.go (Go)\n") {
		t.Errorf("missing extension bucket, got:\n%s", output)
	}
	if !strings.Contains(output, "Filename (1)\nMakefile (Makefile)\n") {
		t.Errorf("missing filename bucket, got:\n%s", output)
	}
}

func TestRun_StrategyBreakdownFiltered(t *testing.T) {
	dir := writeTree(t)
	chdir(t, dir)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-s", "-f", "Filename", "."}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	output := stdout.String()
	if !strings.Contains(output, "Filename (1)") {
		t.Errorf("missing filtered bucket, got:\n%s", output)
	}
	if strings.Contains(output, "Extension") {
		t.Errorf("filter leaked non-matching bucket, got:\n%s", output)
	}
}

func TestRun_FilterMatchesNothing(t *testing.T) {
	dir := writeTree(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-b", "-f", "Cobol", dir}, &stdout, &stderr)

	// Zero printed groups is a success, not an error.
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if strings.Contains(stdout.String(), "(") {
		t.Errorf("expected no group headers, got:\n%s", stdout.String())
	}
}

func TestRun_InvalidFilter(t *testing.T) {
	dir := writeTree(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-b", "-f", "(", dir}, &stdout, &stderr)

	if code != 2 {
		t.Fatalf("expected exit code 2 for invalid filter, got %d", code)
	}
	if !strings.Contains(stderr.String(), "invalid filter") {
		t.Errorf("expected filter error on stderr, got: %s", stderr.String())
	}
	// Startup errors produce no partial output.
	if stdout.Len() != 0 {
		t.Errorf("expected no stdout before filter validation, got:\n%s", stdout.String())
	}
}

func TestRun_MissingRoot(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "nope")}, &stdout, &stderr)

	if code != 2 {
		t.Fatalf("expected exit code 2 for missing root, got %d", code)
	}
}

func TestRun_Deterministic(t *testing.T) {
	dir := writeTree(t)
	chdir(t, dir)

	var first, second bytes.Buffer
	var stderr bytes.Buffer
	if code := run([]string{"-b", "-s", "."}, &first, &stderr); code != 0 {
		t.Fatalf("first run failed: %d", code)
	}
	if code := run([]string{"-b", "-s", "."}, &second, &stderr); code != 0 {
		t.Fatalf("second run failed: %d", code)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("output differs between identical runs:\n%q\nvs\n%q", first.String(), second.String())
	}
}

func TestRun_ProjectConfigIgnore(t *testing.T) {
	dir := writeTree(t)
	if err := os.WriteFile(filepath.Join(dir, ".polyglot.yaml"), []byte("ignore:\n  - \"*.go\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{dir}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if strings.Contains(stdout.String(), "Go") {
		t.Errorf("ignored files still reported:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "50.00% Makefile") {
		t.Errorf("expected Makefile at 50%%, got:\n%s", stdout.String())
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--version"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "polyglot") {
		t.Errorf("expected version string, got: %s", stdout.String())
	}
}
