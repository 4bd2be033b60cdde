package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 3, cfg.Slicer.MinMethodLOC)
	assert.Equal(t, 1000, cfg.Slicer.MaxClassLOC)
	assert.Equal(t, 0.5, cfg.Detection.MinConfidence)
	assert.Equal(t, 4, cfg.Detection.Workers)
	assert.False(t, cfg.Detection.Parallel)
	assert.False(t, cfg.Detection.DedupeUnits)
	assert.True(t, cfg.Detection.ClassDetector.Enabled)
	assert.True(t, cfg.Detection.MethodDetector.Enabled)
	assert.Contains(t, cfg.Exclude.Extensions, ".java")
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debtguard.toml")
	content := `
[slicer]
min_method_loc = 5

[detection]
parallel = true
min_confidence = 0.7

[detection.class_detector]
model = "custom-model"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Slicer.MinMethodLOC)
	assert.True(t, cfg.Detection.Parallel)
	assert.Equal(t, 0.7, cfg.Detection.MinConfidence)
	assert.Equal(t, "custom-model", cfg.Detection.ClassDetector.Model)
	// Untouched keys keep their defaults.
	assert.Equal(t, 1000, cfg.Slicer.MaxClassLOC)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debtguard.yaml")
	content := `
detection:
  workers: 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Detection.Workers)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestShouldExclude(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.ShouldExclude(filepath.Join("src", "FooTest.java")))
	assert.True(t, cfg.ShouldExclude(filepath.Join("target", "classes", "Foo.java")))
	assert.False(t, cfg.ShouldExclude(filepath.Join("src", "Foo.java")))
}

func TestIncludesExtension(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.IncludesExtension("Foo.java"))
	assert.True(t, cfg.IncludesExtension("FOO.JAVA"))
	assert.False(t, cfg.IncludesExtension("foo.go"))
}
