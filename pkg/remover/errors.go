package remover

import (
	"errors"
	"io/fs"
	"syscall"
)

// These messages are part of the command's output contract.
var (
	ErrInvalidArguments  = errors.New("Invalid args length")
	ErrMissingDirectory  = errors.New("Directory missing")
	ErrOperationCanceled = errors.New("Operation canceled")
)

// Operations recorded in FilesystemError.Op.
const (
	opStat       = "stat"
	opRemoveDir  = "remove_dir"
	opRemoveAll  = "remove_all"
	opRemoveFile = "remove_file"
)

// ErrorKind categorizes a failed filesystem call.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindNotFound
	KindPermissionDenied
	KindDirectoryNotEmpty
	KindNotADirectory
	KindIsADirectory
	KindReadOnly
	KindBusy
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindDirectoryNotEmpty:
		return "directory not empty"
	case KindNotADirectory:
		return "not a directory"
	case KindIsADirectory:
		return "is a directory"
	case KindReadOnly:
		return "read-only filesystem"
	case KindBusy:
		return "resource busy"
	default:
		return "other error"
	}
}

func kindOf(op string, err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, syscall.ENOTEMPTY):
		return KindDirectoryNotEmpty
	// Some platforms report a non-empty directory from rmdir(2) as EEXIST.
	case op == opRemoveDir && errors.Is(err, syscall.EEXIST):
		return KindDirectoryNotEmpty
	case errors.Is(err, syscall.ENOTDIR):
		return KindNotADirectory
	case errors.Is(err, syscall.EISDIR):
		return KindIsADirectory
	case errors.Is(err, syscall.EROFS):
		return KindReadOnly
	case errors.Is(err, syscall.EBUSY):
		return KindBusy
	default:
		return KindOther
	}
}

// FilesystemError is returned when a metadata query or removal fails.
// Its message is the category of the failure, not the raw OS text.
type FilesystemError struct {
	Op   string
	Path string
	Kind ErrorKind
	Err  error
}

func newFilesystemError(op, path string, err error) *FilesystemError {
	return &FilesystemError{
		Op:   op,
		Path: path,
		Kind: kindOf(op, err),
		Err:  err,
	}
}

func (e *FilesystemError) Error() string {
	if e.Kind == KindOther && e.Err != nil {
		var pathErr *fs.PathError
		if errors.As(e.Err, &pathErr) {
			return pathErr.Err.Error()
		}
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
