package internal

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// ConfigDir returns the default configuration directory path for the given
// appName on the current operating system. The environment is read through
// the runtime so jailed runtimes resolve inside their jail.
//
// Behavior:
//   - Windows: if the APPDATA environment variable is set, returns
//     APPDATA\<appName>. If APPDATA is not set, an error is returned.
//   - Unix-like systems: if XDG_CONFIG_HOME is set, returns
//     XDG_CONFIG_HOME/<appName>. Otherwise falls back to $HOME/.config/<appName>.
//     If HOME is not set, an error is returned.
//
// Notes:
//   - The returned path is a suggested location and is not created by this
//     function; callers should create the directory if they need it to exist.
//   - appName should be a short directory name (no leading/trailing separators).
func ConfigDir(rt *toolkit.Runtime, appName string) (string, error) {
	if runtime.GOOS == "windows" {
		if appData := rt.Get("APPDATA"); appData != "" {
			return filepath.Join(appData, appName), nil
		}
		return "", fmt.Errorf("APPDATA environment variable not set")
	}
	// Unix-like: prefer $XDG_CONFIG_HOME, fall back to ~/.config
	if xdg := rt.Get("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	if home := rt.Get("HOME"); home != "" {
		return filepath.Join(home, ".config", appName), nil
	}
	return "", fmt.Errorf("HOME environment variable not set")
}
