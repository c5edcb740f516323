package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vtrg/internal/adapters/config"
	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/vtrg/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestLoader_Load_DefaultsToWorkingDirectory(t *testing.T) {
	root := t.TempDir()

	layout, err := newLoader(t).Load(root)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLayout(root), layout)
}

func TestLoader_Load_FindsEngineSourcesUpwards(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Vantor", "Source"), domain.DirPerm))
	nested := filepath.Join(root, "Samples", "Template", "src")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	layout, err := newLoader(t).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, root, layout.Root)
	assert.Equal(t, "Vantor", layout.EngineDir)
}

func TestLoader_Load_Manifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ProjectFileName), `
version: "1"
engine: Engine
build: out
toolchains: cmake/toolchains
resources:
  - assets
`)
	nested := filepath.Join(root, "Sandbox")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	layout, err := newLoader(t).Load(nested)
	require.NoError(t, err)

	assert.Equal(t, root, layout.Root)
	assert.Equal(t, "Engine", layout.EngineDir)
	assert.Equal(t, "out", layout.BuildDir)
	assert.Equal(t, "Samples", layout.SamplesDir, "unset keys keep defaults")
	assert.Equal(t, filepath.Join("cmake", "toolchains"), layout.ToolchainDir)
	assert.Equal(t, []string{"assets"}, layout.ResourceDirs)
}

func TestLoader_Load_ManifestWinsOverEngineSources(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ProjectFileName), "build: Out\n")
	inner := filepath.Join(root, "checkout")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, "Vantor", "Source"), domain.DirPerm))

	layout, err := newLoader(t).Load(inner)
	require.NoError(t, err)
	assert.Equal(t, root, layout.Root)
	assert.Equal(t, "Out", layout.BuildDir)
}

func TestLoader_Load_MalformedManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ProjectFileName), "engine: [unterminated\n")

	_, err := newLoader(t).Load(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProjectParseFailed)
}

func TestLoader_Load_UnsupportedManifestVersion(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, domain.ProjectFileName), "version: \"2\"\nengine: Engine\n")

	_, err := newLoader(t).Load(root)
	require.ErrorIs(t, err, domain.ErrProjectParseFailed)
	assert.ErrorContains(t, err, "unsupported manifest version 2")
}
