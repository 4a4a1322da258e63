package staging

import (
	"fmt"
	"os"
)

// Executor performs the three terminal operations on staged files:
// accept, reject, and clean. Each operation is a single filesystem
// primitive, so there is no partial state to roll back.
type Executor struct {
	log Logger
}

// NewExecutor creates an Executor. A nil logger disables logging.
func NewExecutor(log Logger) *Executor {
	if log == nil {
		log = NewNopLogger()
	}
	return &Executor{log: log}
}

// Accept promotes the staged file over its canonical counterpart and returns
// the canonical path. This is a move, not a copy: after the call the staged
// path no longer exists and the canonical path holds the staged content,
// overwriting whatever was there. The parent directory always exists because
// the staged file lives in it.
func (e *Executor) Accept(stagedPath string) (string, error) {
	sf, err := ParseStagedFile(stagedPath)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(stagedPath)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s: %w", stagedPath, ErrNotFound)
	}

	canonical := sf.CanonicalPath()
	if err := os.Rename(stagedPath, canonical); err != nil {
		return "", fmt.Errorf("promoting %s: %w", stagedPath, err)
	}

	e.log.Info("accepted", "staged", stagedPath, "canonical", canonical)
	return canonical, nil
}

// Reject deletes the staged file. The canonical counterpart, if any, is
// untouched.
func (e *Executor) Reject(stagedPath string) error {
	if _, err := ParseStagedFile(stagedPath); err != nil {
		return err
	}

	info, err := os.Stat(stagedPath)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", stagedPath, ErrNotFound)
	}

	if err := os.Remove(stagedPath); err != nil {
		return fmt.Errorf("rejecting %s: %w", stagedPath, err)
	}

	e.log.Info("rejected", "staged", stagedPath)
	return nil
}

// Clean rejects every staged file under root and returns the number removed.
// The first deletion failure aborts the run; files already removed stay
// removed. Running again with nothing left to clean reports zero, not an
// error.
func (e *Executor) Clean(root string) (int, error) {
	found, err := FindStaged(root)
	if err != nil {
		return 0, err
	}

	for i, sf := range found {
		if err := os.Remove(sf.Path); err != nil {
			return i, fmt.Errorf("rejecting %s: %w", sf.Path, err)
		}
		e.log.Info("rejected", "staged", sf.Path)
	}
	return len(found), nil
}
