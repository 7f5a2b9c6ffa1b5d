// Package config loads runtime settings from defaults, an optional TOML
// file and the environment. Command-line flags are applied on top by the
// cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	Theme     string  `toml:"theme"`
	AltScreen bool    `toml:"alt_screen"`
	Commit    string  `toml:"commit"`
	Log       Logging `toml:"log"`
}

type Logging struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

const (
	envTheme     = "TODO_THEME"
	envAltScreen = "TODO_ALT_SCREEN"
	envCommit    = "TODO_COMMIT"
	envLogFile   = "TODO_LOG_FILE"
	envLogLevel  = "TODO_LOG_LEVEL"
	envLogFormat = "TODO_LOG_FORMAT"
	envConfigDir = "XDG_CONFIG_HOME"
)

var themes = []string{"classic", "neon", "mono"}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:     "classic",
		AltScreen: true,
		Commit:    app.CommitRaw.String(),
		Log: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/todo/config.toml, falling back to the
// user config dir.
func DefaultPath(environ []string) string {
	env := parseEnv(environ)
	if dir := strings.TrimSpace(env[envConfigDir]); dir != "" {
		return filepath.Join(dir, "todo", "config.toml")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todo", "config.toml")
}

// Load layers defaults, the TOML file at path and environ. A missing file
// is only an error when required is set.
func Load(path string, required bool, environ []string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			if required || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}
	applyEnv(&cfg, parseEnv(environ))
	cfg.Normalize()
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

func applyEnv(cfg *Config, env map[string]string) {
	cfg.Theme = envOrDefault(env, envTheme, cfg.Theme)
	cfg.AltScreen = envOrBool(env, envAltScreen, cfg.AltScreen)
	cfg.Commit = envOrDefault(env, envCommit, cfg.Commit)
	cfg.Log.File = envOrDefault(env, envLogFile, cfg.Log.File)
	cfg.Log.Level = envOrDefault(env, envLogLevel, cfg.Log.Level)
	cfg.Log.Format = envOrDefault(env, envLogFormat, cfg.Log.Format)
}

// Normalize lower-cases and trims the enumerated settings so that every
// consumer sees the same spelling Validate accepted.
func (c *Config) Normalize() {
	fold := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	c.Theme = fold(c.Theme)
	c.Commit = fold(c.Commit)
	c.Log.Level = fold(c.Log.Level)
	c.Log.Format = fold(c.Log.Format)
}

// Validate rejects values the rest of the program cannot interpret. Call
// Normalize first.
func (c Config) Validate() error {
	known := false
	for _, t := range themes {
		if t == c.Theme {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("theme must be one of %s (got %q)", strings.Join(themes, ", "), c.Theme)
	}
	if _, ok := app.ParseCommitPolicy(c.Commit); !ok {
		return fmt.Errorf("commit must be raw or trim (got %q)", c.Commit)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch c.Log.Format {
	case "", "text", "json", "logfmt":
	default:
		return fmt.Errorf("log format must be text, json or logfmt (got %q)", c.Log.Format)
	}
	return nil
}

// CommitPolicy returns the parsed commit policy. Call Validate first.
func (c Config) CommitPolicy() app.CommitPolicy {
	p, _ := app.ParseCommitPolicy(c.Commit)
	return p
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			continue
		}
		values[k] = v
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
