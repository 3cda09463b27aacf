package runs

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bfvm/programs"
)

var (
	ErrUsage      = errors.New("expecting exactly one file path")
	ErrNotFile    = errors.New("not a regular file")
	ErrUnreadable = errors.New("cannot read source text")
)

// FileError reports a source file that cannot be loaded.
// Kind is ErrNotFile or ErrUnreadable, Err the underlying cause if any.
type FileError struct {
	Kind error
	Path string
	Err  error
}

func (f *FileError) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("%s: %s", f.Path, f.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", f.Path, f.Kind, f.Err)
}

func (f *FileError) Unwrap() []error {
	if f.Err == nil {
		return []error{f.Kind}
	}
	return []error{f.Kind, f.Err}
}

// Report prints err for the terminal user.
func Report(w io.Writer, err error) {
	var fileErr *FileError
	switch {

	case errors.Is(err, ErrUsage):
		fmt.Fprintln(w, "You must pass exactly one filepath as an argument.")

	case errors.As(err, &fileErr) && fileErr.Kind == ErrNotFile:
		fmt.Fprintf(w, "File %s does not exist.\n", fileErr.Path)

	case errors.As(err, &fileErr) && fileErr.Kind == ErrUnreadable:
		fmt.Fprintf(w, "Error occurred reading from file %s.\n", fileErr.Path)
		fmt.Fprintln(w, "This user might not have permission to read the file.")
		fmt.Fprintln(w, "The file might not be encoded as valid utf8.")

	case errors.Is(err, programs.ErrUnbalanced):
		fmt.Fprintln(w, "Mismatched brackets in source code.")

	default:
		fmt.Fprintln(w, err)
	}
}
