package filesystem

import (
	"io/fs"
	"os"
	"syscall"
)

// OS removes paths on the host filesystem. Errors are returned as produced by
// the os package so callers can categorize them.
type OS struct{}

// IsDir reports whether path is a directory, following symbolic links.
func (OS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// RemoveDir deletes path only when it is an empty directory, like rmdir(2).
func (OS) RemoveDir(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "rmdir", Path: path, Err: syscall.ENOTDIR}
	}
	return os.Remove(path)
}

// RemoveAll deletes path and everything below it.
func (OS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// RemoveFile deletes a single non-directory entry.
func (OS) RemoveFile(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "unlink", Path: path, Err: syscall.EISDIR}
	}
	return os.Remove(path)
}
