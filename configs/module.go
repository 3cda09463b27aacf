package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bfvm/cmds"
	"github.com/reusee/bfvm/logs"
	"github.com/reusee/dscope"
)

//go:embed schema.cue
var Schema string

type Module struct {
	dscope.Module
	Logs logs.Module
}

var configFiles = cmds.Collect[string]("-config", "load config file, before the default locations")

var defaultFilenames = []string{
	"bfvm.cue",
	".bfvm.cue",
}

// SearchPaths returns existing default config files, most specific first.
func SearchPaths() (paths []string) {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")
	for _, dir := range dirs {
		for _, filename := range defaultFilenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) Loader(
	logger logs.Logger,
) Loader {
	paths := append(append([]string(nil), *configFiles...), SearchPaths()...)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	loader := NewLoader(paths, Schema)
	if err := loader.Err(); err != nil {
		logger.Warn("config not loaded, using defaults",
			"error", err,
		)
	}
	return loader
}
