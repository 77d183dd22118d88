// Package projectfs writes generated units into the project tree.
//
// Overview:
//   - Responsibility: Rooted, atomic file output for generated units
//   - Key Types: Sink, Output, ProjectFS
//   - Concurrency Model: One Output per unit; distinct units may be written concurrently
//   - Error Semantics: File system errors wrap the relative path
//   - Performance Notes: Content is streamed to a temp file and renamed on commit
//
// Usage:
//
//	pfs := NewProjectFS("internal/conf")
//	out, err := pfs.Create("conf.Config", "config_props.go")
//	_, err = out.Write(source)
//	err = out.Commit() // or out.Abort()
package projectfs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.eggybyte.com/egg/propgen/core/log"
)

// Sink opens outputs addressed by unit name.
type Sink interface {
	// Create opens an output for unit at path, relative to the sink root.
	Create(unit, path string) (Output, error)
}

// Output is a pending unit. Nothing is visible until Commit succeeds;
// Abort discards everything written so far.
type Output interface {
	io.Writer
	Commit() error
	Abort() error
}

// ProjectFS provides rooted file system output.
//
// Parameters:
//   - rootDir: Root directory for operations
//   - logger: Receives debug records for file operations
//
// Concurrency:
//   - Safe for concurrent use
type ProjectFS struct {
	rootDir string
	logger  log.Logger
}

// NewProjectFS creates a new project file system rooted at rootDir.
//
// Parameters:
//   - rootDir: Root directory for operations
//
// Returns:
//   - *ProjectFS: Project file system instance
func NewProjectFS(rootDir string) *ProjectFS {
	return &ProjectFS{
		rootDir: rootDir,
		logger:  log.Nop(),
	}
}

// SetLogger sets the logger used for file operation records.
func (pfs *ProjectFS) SetLogger(logger log.Logger) {
	if logger == nil {
		logger = log.Nop()
	}
	pfs.logger = logger
}

// Create opens a temp file next to path; Commit renames it into place.
//
// Parameters:
//   - unit: Unit name, used for logging only
//   - path: File path relative to root
//
// Returns:
//   - Output: Pending output
//   - error: Directory or temp file creation error if any
//
// Concurrency:
//   - Single-threaded per output
func (pfs *ProjectFS) Create(unit, path string) (Output, error) {
	fullPath := filepath.Join(pfs.rootDir, path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create parent directory for %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), "."+filepath.Base(fullPath)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	pfs.logger.Debug("output opened", log.Str("unit", unit), log.Str("path", path))
	return &pendingFile{
		file:   tmp,
		target: fullPath,
		path:   path,
		unit:   unit,
		logger: pfs.logger,
	}, nil
}

// FileExists checks if a file exists.
//
// Parameters:
//   - path: File path relative to root
//
// Returns:
//   - bool: True if file exists
//   - error: File system error if any
func (pfs *ProjectFS) FileExists(path string) (bool, error) {
	_, err := os.Stat(filepath.Join(pfs.rootDir, path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

type pendingFile struct {
	file   *os.File
	target string
	path   string
	unit   string
	logger log.Logger
	done   bool
}

func (p *pendingFile) Write(b []byte) (int, error) {
	if p.done {
		return 0, os.ErrClosed
	}
	return p.file.Write(b)
}

func (p *pendingFile) Commit() error {
	if p.done {
		return os.ErrClosed
	}
	p.done = true

	if err := p.file.Close(); err != nil {
		_ = os.Remove(p.file.Name())
		return fmt.Errorf("failed to write file %s: %w", p.path, err)
	}
	if err := os.Chmod(p.file.Name(), 0644); err != nil {
		_ = os.Remove(p.file.Name())
		return fmt.Errorf("failed to set mode of %s: %w", p.path, err)
	}
	if err := os.Rename(p.file.Name(), p.target); err != nil {
		_ = os.Remove(p.file.Name())
		return fmt.Errorf("failed to write file %s: %w", p.path, err)
	}

	p.logger.Debug("output committed", log.Str("unit", p.unit), log.Str("path", p.path))
	return nil
}

func (p *pendingFile) Abort() error {
	if p.done {
		return nil
	}
	p.done = true

	_ = p.file.Close()
	if err := os.Remove(p.file.Name()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to discard %s: %w", p.path, err)
	}
	p.logger.Debug("output discarded", log.Str("unit", p.unit), log.Str("path", p.path))
	return nil
}
