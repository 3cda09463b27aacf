package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/bfvm/cmds"
	"github.com/reusee/bfvm/modes"
	"github.com/reusee/bfvm/runs"
	"github.com/reusee/dscope"
)

func main() {
	args, err := cmds.Execute(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmds.PrintUsage()
		os.Exit(1)
	}

	scope := dscope.New(
		new(runs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		main runs.Main,
	) {
		if err := main(context.Background(), args); err != nil {
			runs.Report(os.Stderr, err)
			os.Exit(1)
		}
	})
}
