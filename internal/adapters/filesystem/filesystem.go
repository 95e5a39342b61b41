// Package filesystem provides the afero-backed file access primitive.
package filesystem

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"filemanip/internal/domain"
	"filemanip/internal/errors"
)

// defaultPerm is applied to files that do not exist yet.
const defaultPerm os.FileMode = 0o644

// maxLinkDepth bounds symlink resolution, matching the usual ELOOP limit.
const maxLinkDepth = 40

var errLinkLoop = stderrors.New("too many levels of symbolic links")

// Adapter provides file system operations.
type Adapter struct {
	fs   afero.Fs
	mode domain.WriteMode
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithWriteMode selects how WriteFile replaces existing content.
func WithWriteMode(mode domain.WriteMode) Option {
	return func(a *Adapter) {
		a.mode = mode
	}
}

// New creates a filesystem adapter over the operating system.
func New(opts ...Option) *Adapter {
	return NewWithFs(afero.NewOsFs(), opts...)
}

// NewWithFs creates a filesystem adapter over an arbitrary afero filesystem.
func NewWithFs(fs afero.Fs, opts ...Option) *Adapter {
	a := &Adapter{
		fs:   fs,
		mode: domain.WriteModeAtomic,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Mode returns the configured write mode.
func (a *Adapter) Mode() domain.WriteMode {
	return a.mode
}

// ReadFile reads the whole file at path.
func (a *Adapter) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileNotFoundError(path, err)
		}
		return nil, errors.NewIOError("read", path, err)
	}
	return data, nil
}

// Stat returns file info.
func (a *Adapter) Stat(path string) (os.FileInfo, error) {
	return a.fs.Stat(path)
}

// WriteFile replaces the content of path with data. Parent directories are
// never created. A symlink at path is followed and its target rewritten.
func (a *Adapter) WriteFile(path string, data []byte) error {
	target, err := a.resolveLinks(path)
	if err != nil {
		return errors.NewIOError("resolve", path, err)
	}
	path = target

	perm := a.permFor(path)
	if a.mode == domain.WriteModeDirect {
		if err := afero.WriteFile(a.fs, path, data, perm); err != nil {
			return errors.NewIOError("write", path, err)
		}
		return nil
	}
	return a.writeAtomic(path, data, perm)
}

// resolveLinks follows symlinks until path names a non-link or a missing
// file. Filesystems without link support return path unchanged.
func (a *Adapter) resolveLinks(path string) (string, error) {
	lstater, ok := a.fs.(afero.Lstater)
	if !ok {
		return path, nil
	}
	reader, ok := a.fs.(afero.LinkReader)
	if !ok {
		return path, nil
	}

	for i := 0; i < maxLinkDepth; i++ {
		info, lstatCalled, err := lstater.LstatIfPossible(path)
		if err != nil || !lstatCalled || info.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}
		link, err := reader.ReadlinkIfPossible(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(path), link)
		}
		path = link
	}
	return "", errLinkLoop
}

// permFor keeps the permissions of an existing file.
func (a *Adapter) permFor(path string) os.FileMode {
	info, err := a.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return defaultPerm
	}
	return info.Mode().Perm()
}

func (a *Adapter) writeAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if _, err := a.fs.Stat(dir); err != nil {
		return errors.NewIOError("write", path, err)
	}

	tmp, err := afero.TempFile(a.fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.NewIOError("write", path, err)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		return errors.Join(errors.NewIOError("write", path, err), a.removeTemp(tmpName))
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(errors.NewIOError("write", path, err), a.removeTemp(tmpName))
	}
	if err := a.fs.Chmod(tmpName, perm); err != nil {
		return errors.Join(errors.NewIOError("write", path, err), a.removeTemp(tmpName))
	}
	if err := a.fs.Rename(tmpName, path); err != nil {
		return errors.Join(errors.NewIOError("replace", path, err), a.removeTemp(tmpName))
	}
	return nil
}

func (a *Adapter) removeTemp(name string) error {
	if err := a.fs.Remove(name); err != nil && !os.IsNotExist(err) {
		return errors.NewIOError("remove temporary file", name, err)
	}
	return nil
}
