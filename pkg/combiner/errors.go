package combiner

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind categorizes a file I/O failure. The same taxonomy applies to reading
// source files and to opening or writing the output.
type Kind int

const (
	// NotFound means the path does not exist.
	NotFound Kind = iota
	// PermissionDenied means the process lacks access to the path.
	PermissionDenied
	// OtherIO covers any remaining OS-level failure.
	OtherIO
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	default:
		return "i/o error"
	}
}

// FileError couples a failing path with its error category and the
// underlying OS error.
type FileError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// classify wraps err in a FileError, mapping the stdlib sentinel errors onto
// the taxonomy.
func classify(path string, err error) *FileError {
	kind := OtherIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = NotFound
	case errors.Is(err, fs.ErrPermission):
		kind = PermissionDenied
	}
	return &FileError{Path: path, Kind: kind, Err: err}
}
