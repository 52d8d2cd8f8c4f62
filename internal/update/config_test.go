package update

import (
	"strings"
	"testing"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	if !strings.HasSuffix(cfg.DBPath, "organiserd.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if !strings.HasSuffix(cfg.MirrorPath, "mirror.json") {
		t.Fatalf("unexpected mirror path %q", cfg.MirrorPath)
	}
	if !cfg.SyncOnStart {
		t.Fatal("expected sync on start by default")
	}
	if cfg.OpenAIAPIKey != "" {
		t.Fatal("expected no api key by default")
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("ORGANISERD_DB_PATH", "/tmp/tasks.db")
	t.Setenv("ORGANISERD_MIRROR_PATH", "/tmp/mirror.json")
	t.Setenv("ORGANISERD_OPENAI_API_KEY", "sk-test")
	t.Setenv("ORGANISERD_SYNC_ON_START", "false")

	cfg := RuntimeConfigFromEnv()

	if cfg.DBPath != "/tmp/tasks.db" {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.MirrorPath != "/tmp/mirror.json" {
		t.Fatalf("unexpected mirror path %q", cfg.MirrorPath)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("unexpected api key %q", cfg.OpenAIAPIKey)
	}
	if cfg.SyncOnStart {
		t.Fatal("expected sync on start disabled")
	}
}

func TestRuntimeConfigFallsBackToOpenAIKey(t *testing.T) {
	t.Setenv("ORGANISERD_OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-fallback")

	cfg := RuntimeConfigFromEnv()
	if cfg.OpenAIAPIKey != "sk-fallback" {
		t.Fatalf("expected fallback key, got %q", cfg.OpenAIAPIKey)
	}
}

func TestRuntimeConfigIgnoresBadBool(t *testing.T) {
	t.Setenv("ORGANISERD_SYNC_ON_START", "definitely")

	cfg := RuntimeConfigFromEnv()
	if !cfg.SyncOnStart {
		t.Fatal("expected default when the value does not parse")
	}
}
