// Package fileops resolves collision-free file names inside a directory.
package fileops

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/helpers/pkg/helper_err"
)

// reservedFileMode is the mode of files created by the exclusive strategy.
const reservedFileMode os.FileMode = 0o644

// FileSystemOperations provides the filesystem probes used by the resolver
type FileSystemOperations struct {
	fs     afero.Fs
	logger *zap.Logger
}

// NewFileSystemOperations creates filesystem operations over fs
func NewFileSystemOperations(fs afero.Fs, logger *zap.Logger) *FileSystemOperations {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSystemOperations{
		fs:     fs,
		logger: logger.Named("filesystem"),
	}
}

// Exists checks if a directory entry exists at path.
// Symlinks are not followed when fs supports Lstat, so a dangling link counts as taken.
// Errors other than "not exist" are returned as IOFailure.
func (f *FileSystemOperations) Exists(ctx context.Context, path string) (bool, error) {
	_, err := f.lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	f.logger.Warn("Failed to probe path",
		zap.String("path", path),
		zap.Error(err))
	return false, helper_err.WrapIOFailure(helper_err.NewIOFailureError("failed to check if path exists "+path, err,
		"Check that the directory is readable by the current user"))
}

func (f *FileSystemOperations) lstat(path string) (os.FileInfo, error) {
	if l, ok := f.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return f.fs.Stat(path)
}

// CreateExclusive atomically creates an empty file at path.
// It reports false without error when the path is already taken.
func (f *FileSystemOperations) CreateExclusive(ctx context.Context, path string) (bool, error) {
	file, err := f.fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, reservedFileMode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		f.logger.Warn("Failed to create file",
			zap.String("path", path),
			zap.Error(err))
		return false, helper_err.WrapIOFailure(helper_err.NewIOFailureError("failed to create file "+path, err,
			"Check that the directory exists and is writable"))
	}
	if err := file.Close(); err != nil {
		f.logger.Warn("Failed to close created file", zap.String("path", path), zap.Error(err))
	}

	f.logger.Debug("File reserved", zap.String("path", path))
	return true, nil
}
