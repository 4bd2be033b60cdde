// Package scanner discovers analyzable source files under a root.
package scanner

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/debtguard/debtguard/pkg/config"
)

// Scanner walks a directory tree collecting source files that pass the
// configured exclusion rules.
type Scanner struct {
	cfg *config.Config
}

// New creates a scanner bound to a config.
func New(cfg *config.Config) *Scanner {
	return &Scanner{cfg: cfg}
}

// Scan returns the analyzable files under root, sorted, with paths
// relative to root joined back onto it. Excluded directories are pruned
// without descending.
func (s *Scanner) Scan(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			if path != root && s.excludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !s.cfg.IncludesExtension(path) {
			return nil
		}
		if s.excludeFile(rel, d.Name()) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func (s *Scanner) excludeDir(name string) bool {
	for _, dir := range s.cfg.Exclude.Dirs {
		if name == dir {
			return true
		}
	}
	return false
}

// excludeFile matches patterns against both the base name and the
// root-relative path, so "*Test.java" and "src/generated/**" both work.
func (s *Scanner) excludeFile(rel, base string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range s.cfg.Exclude.Patterns {
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
		if strings.ContainsAny(pattern, "/*") {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				return true
			}
		}
	}
	return false
}
