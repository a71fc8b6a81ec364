package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// System is the system-wide config path (e.g., /etc/mdlive/config.yaml).
	System string

	// User is the user-level config path (e.g., ~/.config/mdlive/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.mdlive.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// projectConfigFiles are the config file names searched for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".mdlive.yml",
	".mdlive.yaml",
	"mdlive.yml",
	"mdlive.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root, which bounds the
// upward project search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations. Missing
// files are represented as empty strings, not errors.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	paths := &ConfigPaths{
		System: findSystemConfig(),
		User:   findUserConfig(),
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}
	paths.Project = project

	return paths, nil
}

// FindProjectConfig searches upward from workDir for a project config file,
// stopping at a VCS root or the filesystem root.
func FindProjectConfig(ctx context.Context, workDir string) (string, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		for _, name := range projectConfigFiles {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate, nil
			}
		}

		atVCSRoot := false
		for _, marker := range vcsRootMarkers {
			if dirExists(filepath.Join(dir, marker)) {
				atVCSRoot = true
				break
			}
		}

		parent := filepath.Dir(dir)
		if atVCSRoot || parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func findSystemConfig() string {
	if runtime.GOOS == "windows" {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join("/etc/mdlive", name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func findUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(configHome, "mdlive", name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
