package repl

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHistory_WriteAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)

	for _, e := range []HistoryEntry{
		{"declare a = 1", modeEval},
		{"vars", modeCtrl},
		{"print a", modeEval},
	} {
		if _, err := h.WriteWithMode(e.Line, e.Mode); err != nil {
			t.Fatalf("WriteWithMode(%q) error = %v", e.Line, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "E:declare a = 1\nC:vars\nE:print a\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}

	loaded := NewHistory(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", loaded.Len())
	}

	entry, err := loaded.GetEntry(1)
	if err != nil || entry != (HistoryEntry{"vars", modeCtrl}) {
		t.Errorf("GetEntry(1) = %+v, %v", entry, err)
	}
}

func TestHistory_Deduplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)
	h := NewHistory(path)

	for _, line := range []string{"print 1", "print 2", "print 2", "  print 1  ", ""} {
		if _, err := h.WriteWithMode(line, modeEval); err != nil {
			t.Fatal(err)
		}
	}

	// The same line in the other mode is a distinct entry.
	if _, err := h.WriteWithMode("print 2", modeCtrl); err != nil {
		t.Fatal(err)
	}

	got := h.Entries()
	want := []HistoryEntry{
		{"print 2", modeEval},
		{"print 1", modeEval},
		{"print 2", modeCtrl},
	}

	if len(got) != len(want) {
		t.Fatalf("Entries() = %+v, want %+v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Count(string(data), "\n") != 3 {
		t.Errorf("file not rewritten after removing duplicate: %q", data)
	}
}

func TestHistory_LoadLegacyAndMissing(t *testing.T) {
	dir := t.TempDir()

	missing := NewHistory(filepath.Join(dir, "absent"))
	if err := missing.Load(); err != nil || missing.Len() != 0 {
		t.Errorf("Load(missing) = %v, len %d", err, missing.Len())
	}

	path := filepath.Join(dir, baseHistory)
	if err := os.WriteFile(path, []byte("print 1\n\nC:quit\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	if e, _ := h.GetEntry(0); e != (HistoryEntry{"print 1", modeEval}) {
		t.Errorf("untagged entry = %+v", e)
	}

	if _, err := h.GetEntry(2); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("GetEntry(2) error = %v, want ErrOutOfBounds", err)
	}
}
