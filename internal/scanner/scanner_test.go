package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codemimic/mimic/pkg/config"
)

func TestNewScanner(t *testing.T) {
	// With nil config
	s := NewScanner(nil)
	if s == nil {
		t.Fatal("NewScanner(nil) returned nil")
	}
	if s.config == nil {
		t.Error("scanner.config should not be nil when passing nil")
	}

	// With explicit config
	cfg := config.DefaultConfig()
	s = NewScanner(cfg)
	if s.config != cfg {
		t.Error("scanner.config should be the provided config")
	}
}

func TestIsSourceFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"main.cpp", true},
		{"main.cc", true},
		{"main.cxx", true},
		{"main.c", true},
		{"header.h", true},
		{"header.hpp", true},
		{"MAIN.CPP", true},
		{"main.go", false},
		{"readme.md", false},
		{"main.cpp.bak", false},
		{"Makefile", false},
	}
	for _, tt := range tests {
		if got := IsSourceFile(tt.path); got != tt.want {
			t.Errorf("IsSourceFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanDir(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"main.cpp":          "int main() {}\n",
		"lib.cc":            "int lib() { return 0; }\n",
		"include/lib.hpp":   "int lib();\n",
		"scripts/run.py":    "# python\n",
		"vendor/dep.cpp":    "int dep() { return 0; }\n",
		"build/gen.cpp":     "int gen() { return 0; }\n",
		"src/util_test.cpp": "void test() {}\n",
		"README.md":         "# readme\n",
	})

	s := NewScanner(config.DefaultConfig())
	files, err := s.ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}

	found := make(map[string]bool)
	for _, f := range files {
		rel, _ := filepath.Rel(tmpDir, f)
		found[filepath.ToSlash(rel)] = true
	}

	for _, want := range []string{"main.cpp", "lib.cc", "include/lib.hpp"} {
		if !found[want] {
			t.Errorf("expected %s in scan results, got %v", want, found)
		}
	}
	for _, skip := range []string{"scripts/run.py", "vendor/dep.cpp", "build/gen.cpp", "src/util_test.cpp", "README.md"} {
		if found[skip] {
			t.Errorf("%s should have been excluded", skip)
		}
	}
}

func TestScanDirGitignore(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"main.cpp":          "int main() {}\n",
		"generated/out.cpp": "int out() { return 0; }\n",
		".gitignore":        "generated/\n",
	})
	if err := os.MkdirAll(filepath.Join(tmpDir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}

	s := NewScanner(config.DefaultConfig())
	files, err := s.ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}

	for _, f := range files {
		rel, _ := filepath.Rel(tmpDir, f)
		if filepath.ToSlash(rel) == "generated/out.cpp" {
			t.Error("gitignored file should have been excluded")
		}
	}
	if len(files) != 1 {
		t.Errorf("files = %d, want 1 (main.cpp only)", len(files))
	}
}

func TestScanFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"main.cpp":  "int main() {}\n",
		"notes.txt": "notes\n",
	})

	s := NewScanner(config.DefaultConfig())

	ok, err := s.ScanFile(filepath.Join(tmpDir, "main.cpp"))
	if err != nil {
		t.Fatalf("ScanFile failed: %v", err)
	}
	if !ok {
		t.Error("main.cpp should be analyzable")
	}

	ok, err = s.ScanFile(filepath.Join(tmpDir, "notes.txt"))
	if err != nil {
		t.Fatalf("ScanFile failed: %v", err)
	}
	if ok {
		t.Error("notes.txt should not be analyzable")
	}

	if _, err := s.ScanFile(filepath.Join(tmpDir, "missing.cpp")); err == nil {
		t.Error("ScanFile should fail for a missing file")
	}
}

func TestFilterBySize(t *testing.T) {
	tmpDir := t.TempDir()
	small := filepath.Join(tmpDir, "small.cpp")
	large := filepath.Join(tmpDir, "large.cpp")
	if err := os.WriteFile(small, []byte("int x;"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(large, make([]byte, 2048), 0644); err != nil {
		t.Fatal(err)
	}

	filtered, skipped := FilterBySize([]string{small, large}, 1024)
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(filtered) != 1 || filtered[0] != small {
		t.Errorf("filtered = %v, want [%s]", filtered, small)
	}

	// maxSize 0 disables filtering
	filtered, skipped = FilterBySize([]string{small, large}, 0)
	if skipped != 0 || len(filtered) != 2 {
		t.Errorf("maxSize 0 should keep everything, got %v skipped %d", filtered, skipped)
	}
}
