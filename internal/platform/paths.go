package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	AppDirName   = "memo-tori"
	DatabaseName = "memo-tori.db"
	SettingsName = "config.toml"

	// HomeEnv overrides both the data and the config directory.
	HomeEnv = "MEMOTORI_HOME"
)

// Paths are the per-user locations of the database and the settings file.
type Paths struct {
	DataDir   string
	ConfigDir string
}

func (p Paths) DatabasePath() string {
	return filepath.Join(p.DataDir, DatabaseName)
}

func (p Paths) SettingsPath() string {
	return filepath.Join(p.ConfigDir, SettingsName)
}

// ResolvePaths computes the application directories and creates them.
//
// Lookup order: $MEMOTORI_HOME, then $XDG_DATA_HOME / $XDG_CONFIG_HOME, then
// ~/.local/share and os.UserConfigDir.
func ResolvePaths() (Paths, error) {
	p, err := lookupPaths()
	if err != nil {
		return Paths{}, err
	}
	for _, dir := range []string{p.DataDir, p.ConfigDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Paths{}, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return p, nil
}

func lookupPaths() (Paths, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return Paths{DataDir: home, ConfigDir: home}, nil
	}

	dataBase := os.Getenv("XDG_DATA_HOME")
	if dataBase == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, fmt.Errorf("no data directory: %w", err)
		}
		dataBase = filepath.Join(home, ".local", "share")
	}

	configBase := os.Getenv("XDG_CONFIG_HOME")
	if configBase == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Paths{}, fmt.Errorf("no config directory: %w", err)
		}
		configBase = dir
	}

	if dataBase == "" || configBase == "" {
		return Paths{}, errors.New("could not determine application directories")
	}

	return Paths{
		DataDir:   filepath.Join(dataBase, AppDirName),
		ConfigDir: filepath.Join(configBase, AppDirName),
	}, nil
}
