package staging

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// FindStaged walks root and returns every regular file whose basename follows
// the staged-file convention, in traversal order. The walk is read-only and
// restartable: each call performs a fresh pass over the filesystem.
func FindStaged(root string) ([]*StagedFile, error) {
	var found []*StagedFile
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !IsStaged(d.Name()) {
			return nil
		}
		sf, err := ParseStagedFile(p)
		if err != nil {
			return err
		}
		found = append(found, sf)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return found, nil
}
