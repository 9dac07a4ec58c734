package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Settings holds the site-level defaults loaded from settings.json.
// Missing or invalid fields keep their hardcoded defaults.
type Settings struct {
	DefaultLanguage string `json:"defaultLanguage"`
	DefaultTheme    string `json:"defaultTheme"`
	DefaultAutoplay bool   `json:"defaultAutoplay"`
}

// DefaultSettings returns the built-in settings used when settings.json is
// absent or fields are missing.
func DefaultSettings() Settings {
	return Settings{
		DefaultLanguage: "en",
		DefaultTheme:    "light",
		DefaultAutoplay: false,
	}
}

// MergeSettings applies a raw settings document on top of the defaults.
// Loaded values win when present and valid; everything else keeps the default.
func MergeSettings(raw map[string]any) Settings {
	s := DefaultSettings()
	if raw == nil {
		return s
	}
	if v, ok := raw["defaultLanguage"].(string); ok && strings.TrimSpace(v) != "" {
		s.DefaultLanguage = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := raw["defaultTheme"].(string); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "light", "dark":
			s.DefaultTheme = strings.ToLower(strings.TrimSpace(v))
		}
	}
	if v, ok := raw["defaultAutoplay"].(bool); ok {
		s.DefaultAutoplay = v
	}
	return s
}

// Config carries server-level configuration resolved from flags and environment.
type Config struct {
	Addr         string
	ContentDir   string
	TemplatesDir string
	PublicDir    string
	SiteURL      string
	LogLevel     string
	Dev          bool
}

// Load resolves server configuration from the environment. A .env file is
// honored when present so local runs don't need exported variables.
func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("FOLIO_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	return Config{
		Addr:         ":" + port,
		ContentDir:   getEnv("FOLIO_CONTENT_DIR", "content"),
		TemplatesDir: getEnv("FOLIO_TEMPLATES_DIR", "templates"),
		PublicDir:    getEnv("FOLIO_PUBLIC_DIR", "public"),
		SiteURL:      getEnv("FOLIO_SITE_URL", ""),
		LogLevel:     getEnv("FOLIO_LOG_LEVEL", "info"),
		Dev:          os.Getenv("FOLIO_DEV") != "" || os.Getenv("DEV") != "",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
