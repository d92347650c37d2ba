// Package config loads credentials and tunables from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider looks up configuration values by key.
// It is constructed once at startup and passed to whatever needs it.
type Provider interface {
	Lookup(key string) (string, bool)
}

// EnvProvider reads the process environment after loading a .env file.
type EnvProvider struct{}

// NewEnvProvider loads the given .env files (".env" when none are given)
// into the process environment. Variables already set win, and a missing
// file is not an error.
func NewEnvProvider(files ...string) *EnvProvider {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// It's okay if the file doesn't exist, variables might be set manually.
		_ = godotenv.Load(f)
	}
	return &EnvProvider{}
}

func (EnvProvider) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapProvider serves values from a map.
type MapProvider map[string]string

func (m MapProvider) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Config holds all configuration for a run.
type Config struct {
	SuperJob   SuperJobConfig
	HeadHunter HeadHunterConfig
	HTTP       HTTPConfig
}

type SuperJobConfig struct {
	// SecretKey is sent as X-Api-App-Id. It is not validated.
	SecretKey string
	URL       string
	PageSize  int
}

type HeadHunterConfig struct {
	// AccessToken is optional; anonymous access works with a User-Agent.
	AccessToken string
	UserAgent   string
	URL         string
	PageSize    int
}

type HTTPConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

// Load creates a Config from p with defaults.
func Load(p Provider) *Config {
	pageSize := getInt(p, "PAGE_SIZE", 20)
	return &Config{
		SuperJob: SuperJobConfig{
			SecretKey: get(p, "SUPERJOB_SECRET_KEY", ""),
			URL:       get(p, "SUPERJOB_API_URL", "https://api.superjob.ru/2.0/vacancies/"),
			PageSize:  pageSize,
		},
		HeadHunter: HeadHunterConfig{
			AccessToken: get(p, "HH_ACCESS_TOKEN", ""),
			UserAgent:   get(p, "HH_USER_AGENT", "devsalary/1.0 (devsalary@example.com)"),
			URL:         get(p, "HH_API_URL", "https://api.hh.ru/vacancies"),
			PageSize:    pageSize,
		},
		HTTP: HTTPConfig{
			Timeout:   time.Duration(getInt(p, "HTTP_TIMEOUT_SEC", 30)) * time.Second,
			Retries:   getInt(p, "HTTP_RETRIES", 2),
			RetryWait: time.Duration(getInt(p, "HTTP_RETRY_WAIT_MS", 500)) * time.Millisecond,
		},
	}
}

func get(p Provider, key, defaultVal string) string {
	if val, ok := p.Lookup(key); ok && val != "" {
		return val
	}
	return defaultVal
}

func getInt(p Provider, key string, defaultVal int) int {
	if val, ok := p.Lookup(key); ok && val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
