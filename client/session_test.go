package client

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSessionProviderStable(t *testing.T) {
	dir := t.TempDir()

	p := NewFileSessionProvider(dir)
	first := p.SessionID()
	if first == "" {
		t.Fatal("SessionID returned empty string")
	}
	if second := p.SessionID(); second != first {
		t.Errorf("second call = %q, want %q", second, first)
	}

	// A new provider over the same directory reads the persisted identifier.
	again := NewFileSessionProvider(dir)
	if got := again.SessionID(); got != first {
		t.Errorf("fresh provider = %q, want persisted %q", got, first)
	}
}

func TestFileSessionProviderDistinctDirs(t *testing.T) {
	a := NewFileSessionProvider(t.TempDir()).SessionID()
	b := NewFileSessionProvider(t.TempDir()).SessionID()
	if a == b {
		t.Errorf("identifiers from separate storage should differ, both %q", a)
	}
}

func TestFileSessionProviderClearedStorage(t *testing.T) {
	dir := t.TempDir()
	first := NewFileSessionProvider(dir).SessionID()

	// Clearing storage (the local-storage analog) yields a fresh identifier.
	if err := os.Remove(filepath.Join(dir, sessionFileName)); err != nil {
		t.Fatalf("remove session file: %v", err)
	}
	second := NewFileSessionProvider(dir).SessionID()
	if second == first {
		t.Errorf("identifier survived storage clear: %q", second)
	}
}

func TestFileSessionProviderCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "deep")
	p := NewFileSessionProvider(dir)
	id := p.SessionID()
	if id == "" {
		t.Fatal("SessionID returned empty string")
	}
	if got := NewFileSessionProvider(dir).SessionID(); got != id {
		t.Errorf("identifier not persisted in created dir: %q vs %q", got, id)
	}
}

func TestStaticSessionProvider(t *testing.T) {
	p := StaticSessionProvider("fixed")
	if p.SessionID() != "fixed" {
		t.Errorf("SessionID = %q, want %q", p.SessionID(), "fixed")
	}
}
