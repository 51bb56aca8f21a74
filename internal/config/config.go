package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// DefaultHeadshotsBaseURL is where portrait assets are published.
const DefaultHeadshotsBaseURL = "https://storage.googleapis.com/temple-square-assets/headshots"

// Config holds all loader configuration
type Config struct {
	// Input tree
	DataDir       string
	ScripturesDir string
	TalksDir      string
	VersePageSize int

	// Known-asset registry
	HeadshotsBaseURL   string
	HeadshotsFile      string
	HeadshotsExactOnly bool

	// Logging: "dev" or "prod"
	LogMode string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = loadConfig()
	})
	return config
}

func loadConfig() *Config {
	return &Config{
		DataDir:       getEnv("DATA_DIR", "./data"),
		ScripturesDir: getEnv("SCRIPTURES_SUBDIR", "scriptures"),
		TalksDir:      getEnv("TALKS_SUBDIR", "talks"),
		VersePageSize: getEnvInt("VERSE_PAGE_SIZE", 1000),

		HeadshotsBaseURL:   strings.TrimRight(getEnv("HEADSHOTS_BASE_URL", DefaultHeadshotsBaseURL), "/"),
		HeadshotsFile:      getEnv("HEADSHOTS_FILE", ""),
		HeadshotsExactOnly: getEnvBool("HEADSHOTS_EXACT_ONLY", false),

		LogMode: getEnv("LOG_MODE", "dev"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil || i <= 0 {
			return defaultValue
		}
		return i
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return b
	}
	return defaultValue
}
