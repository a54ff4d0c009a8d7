package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// ConfigDir resolves the directory holding ha-assist.yaml.
// Resolution order: $HA_ASSIST_CONFIG_DIR > $XDG_CONFIG_HOME/ha-assist > ~/.config/ha-assist
func ConfigDir() string {
	if dir := os.Getenv("HA_ASSIST_CONFIG_DIR"); dir != "" {
		return ExpandPath(dir)
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "ha-assist")
	}
	return filepath.Join(UserHomeDir(), ".config", "ha-assist")
}

// CacheDir resolves $XDG_CACHE_HOME, then $HOME/.cache. ok is false when
// neither variable is set.
func CacheDir() (dir string, ok bool) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return cacheHome, true
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".cache"), true
	}
	return "", false
}

// ExpandPath resolves a leading "~/" against the home directory.
func ExpandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}
