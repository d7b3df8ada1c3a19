package paths

import (
	"path/filepath"
	"testing"
)

func TestExpand_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Expand("~/a/b")
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if want := filepath.Join(home, "a", "b"); got != want {
		t.Fatalf("Expand = %q, want %q", got, want)
	}
}

func TestExpand_EmptyErrors(t *testing.T) {
	if _, err := Expand("   "); err == nil {
		t.Fatalf("Expand returned nil error, want error")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	fallback := filepath.Join(dir, "default.toml")

	got, err := Resolve(" ", fallback)
	if err != nil || got != fallback {
		t.Fatalf("Resolve(blank) = %q, %v; want %q", got, err, fallback)
	}
	explicit := filepath.Join(dir, "explicit.toml")
	got, err = Resolve(explicit, fallback)
	if err != nil || got != explicit {
		t.Fatalf("Resolve(explicit) = %q, %v; want %q", got, err, explicit)
	}
}
