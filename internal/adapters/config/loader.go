// Package config locates the Vantor checkout and reads its optional manifest.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/vtrg/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ProjectLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the project root for cwd and returns its layout.
// The root is the nearest ancestor holding vtrg.yaml, else the nearest ancestor
// holding the engine sources, else cwd itself.
func (l *Loader) Load(cwd string) (domain.Layout, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return domain.Layout{}, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	if manifestPath, ok := findUpwards(abs, func(dir string) string {
		return filepath.Join(dir, domain.ProjectFileName)
	}); ok {
		return l.loadManifest(manifestPath)
	}

	defaults := domain.DefaultLayout(abs)
	if engineSource, ok := findUpwards(abs, func(dir string) string {
		return domain.DefaultLayout(dir).EngineSourceDir()
	}); ok {
		root := filepath.Dir(filepath.Dir(engineSource))
		l.Logger.Debug(fmt.Sprintf("using project root %s", root))
		return domain.DefaultLayout(root), nil
	}

	l.Logger.Debug(fmt.Sprintf("no %s or engine sources found, using %s", domain.ProjectFileName, abs))
	return defaults, nil
}

func (l *Loader) loadManifest(manifestPath string) (domain.Layout, error) {
	var manifest Manifest
	if err := readAndUnmarshalYAML(manifestPath, &manifest); err != nil {
		return domain.Layout{}, zerr.With(err, "path", manifestPath)
	}
	if manifest.Version != "" && manifest.Version != ManifestVersion {
		err := domain.Fail(domain.ErrProjectParseFailed, zerr.New("unsupported manifest version "+manifest.Version))
		return domain.Layout{}, zerr.With(err, "path", manifestPath)
	}

	root := filepath.Dir(manifestPath)
	l.Logger.Debug(fmt.Sprintf("using project manifest %s", manifestPath))

	layout := domain.DefaultLayout(root)
	override(&layout.EngineDir, manifest.Engine)
	override(&layout.BuildDir, manifest.Build)
	override(&layout.SamplesDir, manifest.Samples)
	override(&layout.SandboxDir, manifest.Sandbox)
	override(&layout.ToolchainDir, manifest.Toolchains)
	if len(manifest.Resources) > 0 {
		layout.ResourceDirs = manifest.Resources
	}
	return layout, nil
}

func override(field *string, value string) {
	if value != "" {
		*field = filepath.Clean(filepath.FromSlash(value))
	}
}

// findUpwards walks from dir to the filesystem root and returns the first
// candidate path that exists.
func findUpwards(dir string, candidate func(string) string) (string, bool) {
	currentDir := dir
	for {
		path := candidate(currentDir)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findUpwards
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return domain.Fail(domain.ErrProjectReadFailed, err)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return domain.Fail(domain.ErrProjectParseFailed, parseErr)
	}

	return nil
}

var _ ports.ProjectLoader = (*Loader)(nil)
