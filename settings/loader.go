package settings

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables consumed by the
// loader, e.g. IMBI_AUTH_JWT_SECRET -> auth.jwt_secret.
const envPrefix = "IMBI"

// settingsKeys enumerates every key the loader binds to environment
// variables. Sections and key names match the TOML layout.
var settingsKeys = []string{
	"server.environment",
	"server.host",
	"server.port",
	"neo4j.url",
	"neo4j.database",
	"neo4j.user",
	"neo4j.password",
	"neo4j.keep_alive",
	"clickhouse.url",
	"clickhouse.database",
	"clickhouse.user",
	"clickhouse.password",
	"auth.jwt_secret",
	"auth.jwt_algorithm",
	"auth.encryption_key",
	"auth.access_token_expire_seconds",
	"auth.refresh_token_expire_seconds",
	"auth.password_min_length",
	"auth.password_require_uppercase",
	"auth.password_require_lowercase",
	"auth.password_require_digit",
	"auth.password_require_special",
	"logging.level",
	"logging.format",
	"logging.output",
	"logging.no_color",
	"logging.timestamp",
	"logging.caller",
}

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver handles finding config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles finds the config.toml and .env files to load.
// Explicit paths win; otherwise standard locations are searched.
func (r *Resolver) ResolveFiles(opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.findFirst(
			"./config.toml",
			"./config/config.toml",
			"../config.toml",
			"../config/config.toml",
			"/etc/imbi/config.toml",
		)
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.findFirst(
			"./.env",
			"./config/.env",
			"../.env",
		)
	}
	return resolved
}

func (r *Resolver) findFirst(paths ...string) string {
	for _, path := range paths {
		if r.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load resolves a Configuration from the layered sources: TOML config
// file, .env file, then IMBI_-prefixed environment variables, with
// environment taking precedence over the file. Defaults fill whatever
// remains unset, including auto-generated secrets.
func Load(opts ...LoaderOption) (*Configuration, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(lc)

	// .env goes into the process environment first so the env bindings
	// below pick it up.
	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			return nil, fmt.Errorf("settings: load env file %s: %w", files.EnvFile, err)
		}
	}

	v := viper.New()
	setBoolDefaults(v)

	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("settings: read config file %s: %w", files.ConfigFile, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range settingsKeys {
		// Unmarshal only sees env values for explicitly bound keys.
		_ = v.BindEnv(key)
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("settings: unmarshal configuration: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setBoolDefaults registers defaults for boolean keys whose zero value
// differs from the documented default; everything else is handled by
// ApplyDefaults after unmarshaling.
func setBoolDefaults(v *viper.Viper) {
	v.SetDefault("neo4j.keep_alive", true)
	v.SetDefault("auth.password_require_uppercase", true)
	v.SetDefault("auth.password_require_lowercase", true)
	v.SetDefault("auth.password_require_digit", true)
	v.SetDefault("auth.password_require_special", true)
	v.SetDefault("logging.timestamp", true)
}
