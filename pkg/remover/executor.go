package remover

import (
	"errors"

	"github.com/blazity/rm/pkg/logging"
)

// FileSystem is the set of primitives the executor mutates the disk with.
type FileSystem interface {
	IsDir(path string) (bool, error)
	// RemoveDir removes path only when it is an empty directory.
	RemoveDir(path string) error
	RemoveAll(path string) error
	RemoveFile(path string) error
}

type Executor struct {
	fs       FileSystem
	prompter Prompter
	logger   logging.Logger
}

func NewExecutor(fs FileSystem, prompter Prompter, logger logging.Logger) *Executor {
	return &Executor{
		fs:       fs,
		prompter: prompter,
		logger:   logger,
	}
}

// Remove deletes path following the policy of mode.
func (e *Executor) Remove(path string, mode Mode) error {
	return e.Execute(path, mode.Plan())
}

// Execute deletes path following plan. The metadata query always runs before
// the prompt, so a missing path never produces a question.
func (e *Executor) Execute(path string, plan Plan) error {
	if err := e.execute(path, plan); err != nil {
		var fsErr *FilesystemError
		if plan.SuppressErrors && errors.As(err, &fsErr) {
			e.logger.Debug("Ignoring removal failure", "op", fsErr.Op, "path", path, "error", fsErr.Err)
			return nil
		}
		return err
	}
	return nil
}

func (e *Executor) execute(path string, plan Plan) error {
	isDir, err := e.fs.IsDir(path)
	if err != nil {
		return newFilesystemError(opStat, path, err)
	}

	if plan.Confirm {
		ok, err := e.prompter.Confirm(path)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOperationCanceled
		}
	}

	switch {
	case isDir && plan.Recursive:
		e.logger.Debug("Removing directory tree", "path", path)
		if err := e.fs.RemoveAll(path); err != nil {
			return newFilesystemError(opRemoveAll, path, err)
		}
	case isDir:
		e.logger.Debug("Removing empty directory", "path", path)
		if err := e.fs.RemoveDir(path); err != nil {
			return newFilesystemError(opRemoveDir, path, err)
		}
	default:
		e.logger.Debug("Removing file", "path", path)
		if err := e.fs.RemoveFile(path); err != nil {
			return newFilesystemError(opRemoveFile, path, err)
		}
	}

	return nil
}
