// Package config loads the termfolio configuration file. TOML and YAML are
// supported; the format is chosen from the file extension.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every setting of the program.
type Config struct {
	Root               string   `toml:"root" yaml:"root"`                               // Content root served by the local file service
	Author             string   `toml:"author" yaml:"author"`                           // Owner and group shown by ls -l
	Remote             string   `toml:"remote" yaml:"remote"`                           // Base URL of a remote file API; overrides Root
	Listen             string   `toml:"listen" yaml:"listen"`                           // Address of the web server
	Repository         string   `toml:"repository" yaml:"repository"`                   // URL opened by the code command
	ContactURL         string   `toml:"contact_url" yaml:"contact_url"`                 // Endpoint apt install posts to
	DocumentExtensions []string `toml:"document_extensions" yaml:"document_extensions"` // Opened in the browser window by xdg-open
	LogLevel           string   `toml:"log_level" yaml:"log_level"`
	LogFile            string   `toml:"log_file" yaml:"log_file"`
	HistoryLimit       int      `toml:"history_limit" yaml:"history_limit"`
	Welcome            string   `toml:"welcome" yaml:"welcome"` // Command run when a session starts
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Root:               "./_files",
		Author:             "guest",
		Listen:             ":8080",
		DocumentExtensions: []string{"md"},
		LogLevel:           "info",
		LogFile:            filepath.Join(os.TempDir(), "termfolio.log"),
		Welcome:            "help",
	}
}

// Load reads a configuration file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	path = ExpandHome(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("YAML parse error in %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return Config{}, fmt.Errorf("TOML parse error in %s: %w", path, err)
		}
	}

	cfg.Root = ExpandHome(cfg.Root)
	cfg.LogFile = ExpandHome(cfg.LogFile)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be fixed up silently.
func (c Config) Validate() error {
	if c.Root == "" && c.Remote == "" {
		return fmt.Errorf("%w: root or remote must be set", ErrInvalid)
	}
	for _, u := range []struct{ key, value string }{
		{"remote", c.Remote},
		{"repository", c.Repository},
		{"contact_url", c.ContactURL},
	} {
		if u.value == "" {
			continue
		}
		parsed, err := url.Parse(u.value)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%w: %s is not an absolute URL: %q", ErrInvalid, u.key, u.value)
		}
	}
	for _, ext := range c.DocumentExtensions {
		if ext == "" || strings.ContainsAny(ext, "./") {
			return fmt.Errorf("%w: document extension %q", ErrInvalid, ext)
		}
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit must not be negative", ErrInvalid)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
