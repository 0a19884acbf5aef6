package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GetHaybaleHome returns the haybale home directory.
// Priority order:
//  1. HAYBALE_HOME environment variable (if set)
//  2. haybale repository root (detected by a .haybale-root marker or a
//     go.mod naming this module)
//  3. Current working directory (fallback)
//
// In cases 2 and 3 the .haybale directory is created if it doesn't exist;
// a HAYBALE_HOME value is returned as given, without creating it.
func GetHaybaleHome() (string, error) {
	if home := os.Getenv("HAYBALE_HOME"); home != "" {
		return home, nil
	}

	repoRoot, err := findHaybaleRepoRoot()
	if err == nil && repoRoot != "" {
		home := filepath.Join(repoRoot, ".haybale")
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create haybale home directory: %w", err)
		}
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	home := filepath.Join(cwd, ".haybale")
	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create haybale home directory: %w", err)
	}

	return home, nil
}

// findHaybaleRepoRoot finds the haybale repository root by looking for a
// .haybale-root marker file, or a go.mod naming this module's path.
func findHaybaleRepoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	current := cwd
	for {
		markerPath := filepath.Join(current, ".haybale-root")
		if _, err := os.Stat(markerPath); err == nil {
			return current, nil
		}

		goModPath := filepath.Join(current, "go.mod")
		if data, err := os.ReadFile(goModPath); err == nil {
			if strings.Contains(string(data), "github.com/harrison/haybale") {
				return current, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", fmt.Errorf("haybale repository root not found (looking for .haybale-root or go.mod with github.com/harrison/haybale)")
}

// GetHistoryDBPath returns the absolute path to the query-history
// database: $HAYBALE_HOME/history.db.
func GetHistoryDBPath() (string, error) {
	home, err := GetHaybaleHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "history.db"), nil
}

// GetLogDir returns the log directory path, creating it if necessary.
func GetLogDir() (string, error) {
	home, err := GetHaybaleHome()
	if err != nil {
		return "", err
	}

	logDir := filepath.Join(home, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("create log directory: %w", err)
	}
	return logDir, nil
}
