// Package config provides the configuration loader for varcss.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds varcss.yaml in cwd or one of its parents. Without a file the
// defaults apply relative to cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		return defaults(cwd), nil
	}

	var file Varcssfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	root := filepath.Dir(configPath)
	cfg := defaults(root)
	if file.Document != "" {
		cfg.DocumentPath = resolvePath(root, file.Document)
	}
	cfg.Export = domain.ExportRequest{
		RootCollectionID:  file.Export.Root,
		ThemeCollectionID: file.Export.Theme,
		UseOverrideSyntax: file.Export.UseOverrideSyntax,
	}
	cfg.JSONLogs = file.Log.JSON

	if cfg.Export.RootCollectionID == "" && cfg.Export.ThemeCollectionID != "" {
		l.Logger.Warn("'export.theme' is set without 'export.root' in " + configPath)
	}

	return cfg, nil
}

func defaults(root string) *domain.Config {
	return &domain.Config{
		Root:         root,
		DocumentPath: filepath.Join(root, domain.DefaultDocumentFileName),
	}
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func readAndUnmarshalYAML(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
