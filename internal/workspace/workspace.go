package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"academic_nausea/internal/config"
)

const BaseDirName = "AcademicNausea"

func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

// EnsureAt creates the workspace layout under base and writes a default
// config file unless one exists.
func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "data"),
	}

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	settingsPath := ConfigPath(base)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		defaults := config.Default()
		defaults.Database = DatabasePath(base)
		raw, marshalErr := defaults.Marshal()
		if marshalErr != nil {
			return "", fmt.Errorf("marshal settings: %w", marshalErr)
		}
		if writeErr := os.WriteFile(settingsPath, raw, 0o644); writeErr != nil {
			return "", fmt.Errorf("write settings: %w", writeErr)
		}
	}

	return base, nil
}

func ConfigPath(root string) string {
	return filepath.Join(root, "configs", "config.yaml")
}

func DatabasePath(root string) string {
	return filepath.Join(root, "data", "nausea.db")
}
