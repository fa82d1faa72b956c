package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeIndex(t *testing.T, dir, doc string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, IndexFilename), []byte(doc), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestFirstPath(t *testing.T) {
	tests := []struct {
		doc, want string
	}{
		{"[Profile0]\nName=default\nIsRelative=1\nPath=abcd.default\n", "abcd.default"},
		{"[Profile1]\nPath=first.default\n[Profile0]\nPath=second.default\n", "first.default"},
		{"[Profile0]\r\nPath=win.default\r\nDefault=1\r\n", "win.default"},
		{"Path=no-newline", "no-newline"},
		{"Path=\nPath=later", ""},
		{"[General]\nStartWithLastProfile=1\n", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := firstPath(tc.doc); got != tc.want {
			t.Errorf("firstPath(%q): got %q, want %q", tc.doc, got, tc.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	base := t.TempDir()
	writeIndex(t, base, "[General]\nStartWithLastProfile=1\n\n[Profile0]\nName=default\nIsRelative=1\nPath=Profiles/abcd.default\nDefault=1\n")

	l := &Locator{BaseDir: base}
	got, err := l.Resolve("")
	if err != nil {
		t.Fatalf("Resolve: unexpected error: %v", err)
	}
	if want := filepath.Join(base, "Profiles", "abcd.default"); got != want {
		t.Errorf("Resolve: got %q, want %q", got, want)
	}
}

func TestDiscoverAbsolute(t *testing.T) {
	base := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere.default")
	writeIndex(t, base, "[Profile0]\nIsRelative=0\nPath="+abs+"\n")

	got, err := (&Locator{BaseDir: base}).Discover()
	if err != nil {
		t.Fatalf("Discover: unexpected error: %v", err)
	}
	if got != abs {
		t.Errorf("Discover: got %q, want %q", got, abs)
	}
}

func TestDiscoverErrors(t *testing.T) {
	missing := t.TempDir()

	noKey := t.TempDir()
	writeIndex(t, noKey, "[General]\nStartWithLastProfile=1\n")

	empty := t.TempDir()
	writeIndex(t, empty, "[Profile0]\nPath=\n")

	for _, base := range []string{missing, noKey, empty} {
		if got, err := (&Locator{BaseDir: base}).Discover(); !errors.Is(err, ErrNotFound) {
			t.Errorf("Discover(%q): got (%q, %v), want ErrNotFound", base, got, err)
		}
	}
}

func TestResolveExplicit(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	l := &Locator{BaseDir: filepath.Join(dir, "no-such-base")}

	got, err := l.Resolve(filepath.Join(dir, ".", "sub", ".."))
	if err != nil {
		t.Fatalf("Resolve: unexpected error: %v", err)
	}
	if got != dir {
		t.Errorf("Resolve: got %q, want %q", got, dir)
	}

	if _, err := l.Resolve(filepath.Join(dir, "missing.default")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve(missing): got %v, want ErrNotFound", err)
	}
	if _, err := l.Canonical(""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Canonical(\"\"): got %v, want ErrNotFound", err)
	}
}
