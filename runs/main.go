package runs

import (
	"context"
	"fmt"

	"github.com/reusee/bfvm/logs"
)

// Main is the whole command: args are the positional arguments left after options.
type Main func(ctx context.Context, args []string) error

func (Module) Main(
	load Load,
	execute Execute,
	newSpan logs.NewSpan,
) Main {
	return func(ctx context.Context, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: got %d", ErrUsage, len(args))
		}
		ctx, _ = newSpan(ctx, "run "+args[0])

		program, err := load(ctx, args[0])
		if err != nil {
			return err
		}

		_, err = execute(ctx, program)
		return err
	}
}
