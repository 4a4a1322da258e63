package staging

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// stagedName is the single place the staged-file naming convention lives:
// a literal 'V', one or more digits, an underscore, then the canonical name.
// Change the convention here and nowhere else.
var stagedName = regexp.MustCompile(`^V([0-9]+)_(.+)$`)

// IsStaged reports whether basename follows the staged-file convention.
func IsStaged(basename string) bool {
	return stagedName.MatchString(basename)
}

// CanonicalName strips the version prefix from basename. The remainder is
// returned verbatim, extension included.
func CanonicalName(basename string) (string, error) {
	m := stagedName.FindStringSubmatch(basename)
	if m == nil {
		return "", fmt.Errorf("%q: %w", basename, ErrNotStaged)
	}
	return m[2], nil
}

// StagedFile represents one file awaiting a decision: a proposed replacement
// for the canonical file of the same name minus the version prefix.
// It is discovered transiently per invocation; nothing is persisted.
type StagedFile struct {
	Path          string // path as discovered or as given on the command line
	Dir           string // containing directory of Path
	VersionTag    string // digits after the leading V; informational only
	CanonicalName string // basename with the prefix stripped
}

// ParseStagedFile builds a StagedFile from a path. This is a pure string
// transform: no filesystem access, whether the file exists is checked at use.
func ParseStagedFile(path string) (*StagedFile, error) {
	base := filepath.Base(path)
	m := stagedName.FindStringSubmatch(base)
	if m == nil {
		return nil, fmt.Errorf("%q: %w", base, ErrNotStaged)
	}
	return &StagedFile{
		Path:          path,
		Dir:           filepath.Dir(path),
		VersionTag:    m[1],
		CanonicalName: m[2],
	}, nil
}

// CanonicalPath returns the path the staged file would replace if accepted.
func (f *StagedFile) CanonicalPath() string {
	return filepath.Join(f.Dir, f.CanonicalName)
}
