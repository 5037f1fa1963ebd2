package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsAndEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("CHAT_TO_MONITOR", "-100123")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.ChatID != -100123 {
		t.Errorf("chat id: got %d", cfg.ChatID)
	}
	if cfg.OutputDir != "output" || cfg.MessagesBefore != 5 || cfg.MessagesAfter != 5 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.GroupWindow() != 60*time.Second {
		t.Errorf("window: got %v", cfg.GroupWindow())
	}
}

func TestLoadYamlWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "chat_id: -200\noutput_dir: drops\ngroup_window_seconds: 120\nmessages_before: 3\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("CHAT_TO_MONITOR", "")
	t.Setenv("GROUP_TIME_WINDOW", "90")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.ChatID != -200 || cfg.OutputDir != "drops" || cfg.MessagesBefore != 3 {
		t.Errorf("yaml not applied: %+v", cfg)
	}
	if cfg.GroupWindowSeconds != 90 {
		t.Errorf("env must override yaml, got %d", cfg.GroupWindowSeconds)
	}
}

func TestLoadRequiredFields(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("CHAT_TO_MONITOR", "-100123")

	if _, err := Load(); err == nil {
		t.Error("missing token must fail")
	}

	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("CHAT_TO_MONITOR", "")

	if _, err := Load(); err == nil {
		t.Error("missing chat must fail")
	}

	t.Setenv("CHAT_TO_MONITOR", "not-a-number")
	if _, err := Load(); err == nil {
		t.Error("non-numeric chat must fail")
	}
}
