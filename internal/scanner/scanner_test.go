package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtguard/debtguard/pkg/config"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("class X {}"), 0o644))
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"src/Main.java",
		"src/util/Helper.java",
		"src/MainTest.java",
		"target/Generated.java",
		"README.md",
	)

	files, err := New(config.DefaultConfig()).Scan(root)
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(root, "src", "Main.java"), files[0])
	assert.Equal(t, filepath.Join(root, "src", "util", "Helper.java"), files[1])
}

func TestScanPrunesExcludedDirs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		".git/objects/Blob.java",
		"node_modules/dep/Dep.java",
		"src/Keep.java",
	)

	files, err := New(config.DefaultConfig()).Scan(root)
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Contains(t, files[0], "Keep.java")
}

func TestScanGlobPatterns(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"src/generated/Stub.java",
		"src/Real.java",
	)

	cfg := config.DefaultConfig()
	cfg.Exclude.Patterns = append(cfg.Exclude.Patterns, "src/generated/**")

	files, err := New(cfg).Scan(root)
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Contains(t, files[0], "Real.java")
}

func TestScanMissingRoot(t *testing.T) {
	_, err := New(config.DefaultConfig()).Scan(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
