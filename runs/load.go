package runs

import (
	"context"
	"errors"
	"os"
	"unicode/utf8"

	"github.com/reusee/bfvm/logs"
	"github.com/reusee/bfvm/programs"
)

var errInvalidUTF8 = errors.New("invalid utf8")

// Load reads and validates the source at path, and tokenizes it.
// Nothing is executed when it fails.
type Load func(ctx context.Context, path string) (programs.Program, error)

func (Module) Load(
	logger logs.Logger,
) Load {
	return func(ctx context.Context, path string) (programs.Program, error) {

		info, err := os.Stat(path)
		if err != nil {
			return nil, &FileError{
				Kind: ErrNotFile,
				Path: path,
				Err:  wrap(err),
			}
		}
		if !info.Mode().IsRegular() {
			return nil, &FileError{
				Kind: ErrNotFile,
				Path: path,
			}
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, &FileError{
				Kind: ErrUnreadable,
				Path: path,
				Err:  wrap(err),
			}
		}
		if !utf8.Valid(content) {
			return nil, &FileError{
				Kind: ErrUnreadable,
				Path: path,
				Err:  errInvalidUTF8,
			}
		}
		source := string(content)

		if err := programs.CheckBalance(source); err != nil {
			logger.DebugContext(ctx, "structural check failed",
				"path", path,
				"error", err,
			)
			return nil, err
		}

		program := programs.Tokenize(source)
		logger.DebugContext(ctx, "program loaded",
			"path", path,
			"bytes", len(content),
			"instructions", len(program),
		)
		return program, nil
	}
}
