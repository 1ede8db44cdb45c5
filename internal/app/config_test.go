package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"calc/internal/app"
	"calc/internal/domain"
)

func TestLoadConfig_MissingFile_Defaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := app.LoadConfig(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Policy != domain.PolicyDeferred {
		t.Errorf("policy %q, want %q", cfg.Policy, domain.PolicyDeferred)
	}
	if cfg.Prompt == "" || cfg.HistoryLimit <= 0 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	home := t.TempDir()
	body := "policy: immediate\nprompt: '> '\nhistory_limit: 5\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := app.LoadConfig(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Policy != domain.PolicyImmediate {
		t.Errorf("policy %q, want %q", cfg.Policy, domain.PolicyImmediate)
	}
	if cfg.Prompt != "> " {
		t.Errorf("prompt %q, want %q", cfg.Prompt, "> ")
	}
	if cfg.HistoryLimit != 5 {
		t.Errorf("history limit %d, want 5", cfg.HistoryLimit)
	}
}

func TestLoadConfig_UnknownPolicy_Fails(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("policy: fancy\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := app.LoadConfig(home); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestLoadConfig_Malformed_Fails(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(":\n\t-"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := app.LoadConfig(home); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestNewWire_BuildsPerPolicy(t *testing.T) {
	for _, p := range []domain.Policy{domain.PolicyDeferred, domain.PolicyImmediate} {
		cfg := app.DefaultConfig(t.TempDir())
		cfg.Policy = p
		w, err := app.NewWire(cfg)
		if err != nil {
			t.Fatalf("wire %q: %v", p, err)
		}
		if w.Engine == nil || w.History == nil || w.Calc == nil {
			t.Fatalf("wire %q: incomplete graph %+v", p, w)
		}
	}
}

func TestNewWire_UnknownPolicy_Fails(t *testing.T) {
	cfg := app.DefaultConfig(t.TempDir())
	cfg.Policy = "fancy"
	if _, err := app.NewWire(cfg); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
