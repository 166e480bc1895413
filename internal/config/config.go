package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by the helper. OPENAI_API_KEY and AI_SHELL
// are both accepted for the credential; AI_SHELL is what the shell's own
// builtin uses, so the two stay in sync.
const (
	EnvAPIKey         = "OPENAI_API_KEY"
	EnvAPIKeyAlt      = "AI_SHELL"
	EnvModel          = "MYSH_LLM_MODEL"
	EnvBaseURL        = "MYSH_LLM_BASE_URL"
	EnvTransport      = "MYSH_LLM_TRANSPORT"
	EnvCatalogCommand = "MYSH_CATALOG_CMD"
	EnvCatalogFile    = "MYSH_CATALOG_FILE"
	EnvDebug          = "MYSH_LLM_DEBUG"
)

// Defaults applied when neither environment, dotenv, nor the YAML file set a
// value.
const (
	DefaultModel          = "gpt-4o-mini"
	DefaultBaseURL        = "https://api.openai.com/v1"
	DefaultCatalogCommand = "./build/picobox --commands-json"
	DefaultCatalogFile    = "commands.json"
)

// Config is the process-wide configuration, loaded exactly once per run and
// treated as static afterwards. A missing value never fails a run; it only
// disables the tier that needed it.
type Config struct {
	APIKey         string
	Model          string
	BaseURL        string
	Transport      string
	CatalogCommand string
	CatalogFile    string
	Debug          bool
}

// fileConfig is the shape of ~/.mysh/mysh.yaml. It sits below environment
// and dotenv in precedence and cannot carry the credential.
type fileConfig struct {
	Model          string `yaml:"model,omitempty"`
	BaseURL        string `yaml:"base_url,omitempty"`
	Transport      string `yaml:"transport,omitempty"`
	CatalogCommand string `yaml:"catalog_cmd,omitempty"`
	CatalogFile    string `yaml:"catalog_file,omitempty"`
	Debug          bool   `yaml:"debug,omitempty"`
}

// MyshDir returns the absolute path to ~/.mysh/.
func MyshDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".mysh"), nil
}

// FilePath returns the absolute path to ~/.mysh/mysh.yaml.
func FilePath() (string, error) {
	dir, err := MyshDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mysh.yaml"), nil
}

// Load resolves the full configuration. Precedence per value: process
// environment, then ~/.mysh/.env, then ~/.mysh/mysh.yaml, then defaults.
// Unreadable or malformed sources count as absent.
func Load() *Config {
	dotenv, _ := LoadDotEnv()
	file := loadFile()

	get := func(key, fileValue, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := dotenv[key]; v != "" {
			return v
		}
		if fileValue != "" {
			return fileValue
		}
		return fallback
	}

	return &Config{
		APIKey:         firstNonEmpty(os.Getenv(EnvAPIKey), os.Getenv(EnvAPIKeyAlt), dotenv[EnvAPIKey], dotenv[EnvAPIKeyAlt]),
		Model:          get(EnvModel, file.Model, DefaultModel),
		BaseURL:        get(EnvBaseURL, file.BaseURL, DefaultBaseURL),
		Transport:      get(EnvTransport, file.Transport, ""),
		CatalogCommand: get(EnvCatalogCommand, file.CatalogCommand, DefaultCatalogCommand),
		CatalogFile:    get(EnvCatalogFile, file.CatalogFile, DefaultCatalogFile),
		Debug:          get(EnvDebug, "", "") == "1" || file.Debug,
	}
}

// loadFile reads ~/.mysh/mysh.yaml. A missing or invalid file yields the
// zero value; file-level problems never surface to the user.
func loadFile() fileConfig {
	var cfg fileConfig
	path, err := FilePath()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}
	}
	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
