package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTempDir(t *testing.T) {
	dir, cleanup := TempDir(t)
	defer cleanup()

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("directory should exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("should be a directory")
	}
	if !filepath.IsAbs(dir) {
		t.Error("should return absolute path")
	}
}

func TestTempDir_Cleanup(t *testing.T) {
	dir, cleanup := TempDir(t)

	testFile := filepath.Join(dir, "test.txt")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}

	cleanup()

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("directory should be removed after cleanup")
	}
}

func TestWriteFile_CreatesParents(t *testing.T) {
	dir := t.TempDir()

	path := WriteFile(t, dir, "nested/deep/main.to", "let a;")

	if path != filepath.Join(dir, "nested", "deep", "main.to") {
		t.Errorf("path = %q", path)
	}
	if got := ReadFile(t, path); got != "let a;" {
		t.Errorf("content = %q, want %q", got, "let a;")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := WriteFile(t, dir, "a.to", "")

	if !FileExists(t, path) {
		t.Error("FileExists should be true for written file")
	}
	if FileExists(t, filepath.Join(dir, "missing.to")) {
		t.Error("FileExists should be false for missing file")
	}
}

func TestSetupProjectDir(t *testing.T) {
	dir := SetupProjectDir(t, "log:\n  level: info\n")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	// macOS temp dirs resolve through /private symlinks
	wantWd, _ := filepath.EvalSymlinks(dir)
	gotWd, _ := filepath.EvalSymlinks(wd)
	if gotWd != wantWd {
		t.Errorf("working dir = %q, want %q", gotWd, wantWd)
	}
	if !FileExists(t, filepath.Join(dir, ".terno", "config.yaml")) {
		t.Error("config file should exist")
	}
}
