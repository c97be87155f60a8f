package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// DataDir holds the SQLite snapshot and its WAL sidecars.
	DataDir string
	// ChromePath overrides PATH lookup for the PDF renderer. Empty means
	// resolve google-chrome/chromium from PATH at render time.
	ChromePath           string
	RenderTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored when no .env file exists.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		DataDir:              getEnv("DATA_DIR", "./data"),
		ChromePath:           getEnv("CHROME_PATH", ""),
		RenderTimeoutSeconds: getEnvInt("RENDER_TIMEOUT_SECONDS", 60),
	}

	return cfg, nil
}

// StorePath is the resume database file inside the data directory.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "resume.db")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
