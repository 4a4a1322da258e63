package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"vst-go/internal/config"
	"vst-go/internal/staging"

	"github.com/google/uuid"
)

// App is the application layer between the CLI and the staging package.
// It resolves configuration, sets up logging with a per-invocation operation
// ID, and exposes high-level operations that take raw string paths.
type App struct {
	cfg     *config.Config
	exec    *staging.Executor
	log     staging.Logger
	logFile *os.File
}

// NewApp creates a fully wired App. operation identifies the CLI command
// being run (e.g. "Accept", "Clean"). The caller must call Close when done.
//
// A missing config file means defaults; a config file that exists but cannot
// be parsed is an error. If the log directory cannot be set up, logging
// degrades to a no-op rather than failing the command.
func NewApp(operation string) (*App, error) {
	defaults, err := GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults.ConfigPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		cfg = config.Default(defaults.LogDir)
	}
	cfg.ApplyDefaults(defaults.LogDir)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	opID := uuid.New().String()
	var log staging.Logger = staging.NewNopLogger()
	var logFile *os.File
	if l, f, err := newLogger(cfg.LogDir, opID); err == nil {
		logFile = f
		log = &slogAdapter{l: l.With("op", operation)}
	}

	return &App{
		cfg:     cfg,
		exec:    staging.NewExecutor(log),
		log:     log,
		logFile: logFile,
	}, nil
}

// Config returns the resolved configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// List returns every staged file under root in traversal order.
func (a *App) List(root string) ([]*staging.StagedFile, error) {
	found, err := staging.FindStaged(root)
	if err != nil {
		return nil, err
	}
	a.log.Debug("listed staged files", "root", root, "count", len(found))
	return found, nil
}

// Compare reports how the staged file at rawPath relates to its canonical
// counterpart.
func (a *App) Compare(rawPath string) (*staging.Comparison, error) {
	c, err := staging.Compare(rawPath, a.cfg.PreviewLines)
	if err != nil {
		return nil, err
	}
	a.log.Debug("compared", "staged", c.StagedPath, "canonical", c.CanonicalPath, "kind", c.Kind)
	return c, nil
}

// Accept promotes the staged file at rawPath over its canonical counterpart
// and returns the canonical path.
func (a *App) Accept(rawPath string) (string, error) {
	return a.exec.Accept(rawPath)
}

// Reject deletes the staged file at rawPath.
func (a *App) Reject(rawPath string) error {
	return a.exec.Reject(rawPath)
}

// Clean rejects every staged file under root and returns the number removed.
func (a *App) Clean(root string) (int, error) {
	return a.exec.Clean(root)
}

// Close releases the log file, if one was opened.
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}
