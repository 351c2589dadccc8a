package rewrite_test

import (
	"os"
	"path/filepath"
	"testing"

	"cobbler/internal/rewrite"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "prog.cob")
	if err := os.WriteFile(target, []byte("old"), 0600); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	if err := rewrite.WriteFile(target, "000010 IDENTIFICATION DIVISION.\n"); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(data) != "000010 IDENTIFICATION DIVISION.\n" {
		t.Errorf("unexpected content %q", data)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected temp file to be cleaned up, found %d entries", len(entries))
	}
}

func TestWriteFile_NewFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "new.cob")
	if err := rewrite.WriteFile(target, "X\n"); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if data, _ := os.ReadFile(target); string(data) != "X\n" {
		t.Errorf("unexpected content %q", data)
	}
}
