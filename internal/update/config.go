package update

import (
	"os"
	"path/filepath"
	"strconv"
)

// RuntimeConfig collects everything main needs to assemble the app.
type RuntimeConfig struct {
	DBPath        string
	MirrorPath    string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	SyncOnStart   bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return RuntimeConfig{
		DBPath:      filepath.Join(home, ".organiserd", "organiserd.db"),
		MirrorPath:  filepath.Join(home, ".organiserd", "mirror.json"),
		SyncOnStart: true,
	}
}

// RuntimeConfigFromEnv overlays ORGANISERD_* variables on the defaults.
// OPENAI_API_KEY is honored as a fallback for the key.
func RuntimeConfigFromEnv() RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.DBPath = getEnvStr("ORGANISERD_DB_PATH", cfg.DBPath)
	cfg.MirrorPath = getEnvStr("ORGANISERD_MIRROR_PATH", cfg.MirrorPath)
	cfg.OpenAIAPIKey = getEnvStr("ORGANISERD_OPENAI_API_KEY", os.Getenv("OPENAI_API_KEY"))
	cfg.OpenAIBaseURL = getEnvStr("ORGANISERD_OPENAI_BASE_URL", "")
	cfg.SyncOnStart = getEnvBool("ORGANISERD_SYNC_ON_START", cfg.SyncOnStart)
	return cfg
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
