package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"studio-site/internal/domain/content"

	"github.com/joho/godotenv"
)

// ErrMissingToken is returned when the Webflow credential is not configured.
// It is reported at request time, the server still starts without it.
var ErrMissingToken = errors.New("Missing env: WEBFLOW_API_TOKEN")

type Config struct {
	Port       string
	CORSOrigin []string
	LogLevel   string
	AppEnv     string

	WebflowToken      string
	WebflowBaseURL    string
	WebflowAPIVersion string

	UseSampleData bool
	ProxyURL      string

	// Collections maps each content kind to its Webflow collection id.
	// Kinds without an id are absent.
	Collections map[content.Kind]string

	AssemblyFormEndpoint string
	AssemblyAPIKey       string
}

func LoadEnv() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}
	return FromEnv()
}

// Reload re-reads the env files (".env" when none are given), letting their
// values replace variables already set in the process, and builds a fresh
// Config. Missing files are skipped.
func Reload(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Overload(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reload %s: %w", f, err)
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		CORSOrigin:        splitList(getEnv("CORS_ORIGIN", "*")),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		AppEnv:            getEnv("APP_ENV", "production"),
		WebflowToken:      strings.TrimSpace(os.Getenv("WEBFLOW_API_TOKEN")),
		WebflowBaseURL:    strings.TrimRight(getEnv("WEBFLOW_API_BASE", "https://api.webflow.com/v2"), "/"),
		WebflowAPIVersion: getEnv("WEBFLOW_API_VERSION", "2.0.0"),
		UseSampleData:     os.Getenv("USE_SAMPLE_DATA") == "true",

		AssemblyFormEndpoint: strings.TrimSpace(os.Getenv("ASSEMBLY_FORM_ENDPOINT")),
		AssemblyAPIKey:       os.Getenv("ASSEMBLY_API_KEY"),

		Collections: make(map[content.Kind]string),
	}
	cfg.ProxyURL = strings.TrimRight(getEnv("CONTENT_PROXY_URL", "http://127.0.0.1:"+cfg.Port), "/")

	for _, kind := range content.Kinds() {
		if id := collectionEnv(kind); id != "" {
			cfg.Collections[kind] = id
		}
	}

	return cfg
}

// Token returns the Webflow credential or ErrMissingToken.
func (c *Config) Token() (string, error) {
	if c.WebflowToken == "" {
		return "", ErrMissingToken
	}
	return c.WebflowToken, nil
}

// CollectionID returns the configured id for kind, "" when unset.
func (c *Config) CollectionID(kind content.Kind) string {
	return c.Collections[kind]
}

// CollectionIDs lists every configured id in kind order.
func (c *Config) CollectionIDs() []string {
	ids := make([]string, 0, len(c.Collections))
	for _, kind := range content.Kinds() {
		if id, ok := c.Collections[kind]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (c *Config) Development() bool {
	return c.AppEnv == "development"
}

// collectionEnv reads COLLECTION_<KIND>, falling back to the VITE_ prefixed
// name used by the frontend build.
func collectionEnv(kind content.Kind) string {
	key := "COLLECTION_" + kind.EnvName()
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv("VITE_" + key))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
