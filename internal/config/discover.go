package config

import (
	"os"
	"path/filepath"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	return filepath.Join(configHome(), "jellyork", "config.toml")
}

// defaultCachePath returns the default scan cache location.
func defaultCachePath() string {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./jellyork-cache.db"
		}
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, "jellyork", "scan.db")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. JELLYORK_CONFIG environment variable
//  2. ./jellyork.toml (current directory)
//  3. $XDG_CONFIG_HOME/jellyork/config.toml
//
// Returns "" when no config file exists; the caller falls back to
// Default().
func Discover() string {
	if envPath := os.Getenv("JELLYORK_CONFIG"); envPath != "" {
		return envPath
	}

	for _, p := range []string{"./jellyork.toml", DefaultPath()} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func configHome() string {
	if h := os.Getenv("XDG_CONFIG_HOME"); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}
