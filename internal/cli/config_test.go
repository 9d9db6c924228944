package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sdejongh/resultdiff/pkg/config"
)

func TestConfigInit(t *testing.T) {
	h := NewTestHelper(t)
	path := filepath.Join(h.tempDir, "config.yaml")

	stdout, _, err := h.Run("config", "init")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(stdout, path) {
		t.Errorf("stdout = %q, want the created path", stdout)
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		t.Fatalf("created config does not load: %v", err)
	}
	if cfg.Suffixes.Expected != ".out" {
		t.Errorf("Suffixes.Expected = %s, want .out", cfg.Suffixes.Expected)
	}

	if _, _, err := h.Run("config", "init"); err == nil {
		t.Error("config init should refuse to overwrite an existing file")
	}
	if _, _, err := h.Run("config", "init", "--force"); err != nil {
		t.Errorf("config init --force error = %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	h := NewTestHelper(t)
	path := filepath.Join(h.tempDir, "config.yaml")
	if err := os.WriteFile(path, []byte("compare:\n  method: binary\nexclude:\n  - \"*.tmp\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	stdout, _, err := h.Run("config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"Comparison: binary", "Exclude: *.tmp", "Suffixes: .out -> .result"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestVersion(t *testing.T) {
	h := NewTestHelper(t)

	stdout, _, err := h.Run("version", "--short")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if strings.TrimSpace(stdout) != Version {
		t.Errorf("stdout = %q, want %q", stdout, Version)
	}

	stdout, _, err = h.Run("version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(stdout, "resultdiff "+Version) {
		t.Errorf("stdout = %q, want resultdiff %s", stdout, Version)
	}
}
