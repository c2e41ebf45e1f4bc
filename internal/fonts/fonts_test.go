package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFirstReadable(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.ttf")
	good := filepath.Join(dir, "good.ttf")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(good, []byte("ttf"), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := Load([]string{filepath.Join(dir, "missing.ttf"), empty, good})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.Path != good || string(f.Data) != "ttf" {
		t.Errorf("Load returned %q (%q), expected %q", f.Path, f.Data, good)
	}
}

func TestLoadUnavailable(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
	}{
		{"no candidates", nil},
		{"blank candidates", []string{"", "  "}},
		{"missing files", []string{filepath.Join(t.TempDir(), "Arial.ttf")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.candidates)
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("Load() error = %v, expected ErrUnavailable", err)
			}
		})
	}
}
