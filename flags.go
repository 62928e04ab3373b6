package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"objviewer/internal/config"
)

type flags struct {
	config  string
	variant config.Variant
	width   int
	height  int
	verbose bool
	models  []string
}

func NewFlags() (*flags, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*flags, error) {
	cfg := fs.String("config", "", "Path to a YAML configuration file (optional)")
	variant := fs.String("variant", "", "Viewer variant, \"colored\" or \"phong\" (default from config, else \"phong\")")
	size := fs.String("size", "", "Window size in width:height pixels, overrides the config (e.g. \"800:800\")")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [model.obj ...]\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f := &flags{
		config:  *cfg,
		variant: config.Variant(*variant),
		verbose: *verbose,
		models:  fs.Args(),
	}

	if f.config != "" {
		if found, err := checkFile(f.config, ".yml", ".yaml"); !found {
			return nil, fmt.Errorf("error: Config file not found:\n\t%s", err.Error())
		} else if err != nil {
			return nil, fmt.Errorf("error: Config file must have a .yml or .yaml extension")
		}
	}

	if f.variant != "" && !f.variant.Valid() {
		return nil, fmt.Errorf("error: Unknown variant %q, expected \"colored\" or \"phong\"", *variant)
	}

	if *size != "" {
		var err error
		if f.width, f.height, err = parseSize(*size); err != nil {
			return nil, fmt.Errorf("error: Window size could not be parsed:\n\t%s", err.Error())
		}
	}

	for _, m := range f.models {
		if found, err := checkFile(m, ".obj"); !found {
			return nil, fmt.Errorf("error: Model file not found:\n\t%s", err.Error())
		} else if err != nil {
			return nil, fmt.Errorf("error: Model file %s must have a .obj extension", m)
		}
	}

	return f, nil
}

func parseSize(size string) (int, int, error) {
	operands := strings.Split(size, ":")
	if len(operands) != 2 {
		return 0, 0, fmt.Errorf("error: Invalid format, expected \"width:height\"")
	}
	width, err := strconv.Atoi(operands[0])
	if err != nil {
		return 0, 0, fmt.Errorf("error: Invalid width value")
	}
	height, err := strconv.Atoi(operands[1])
	if err != nil {
		return 0, 0, fmt.Errorf("error: Invalid height value")
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("error: Width and height must be greater than 0")
	}
	return width, height, nil
}

// apply overrides cfg with the values given on the command line.
func (f flags) apply(cfg *config.Config) {
	if f.width > 0 {
		cfg.Window.Width, cfg.Window.Height = f.width, f.height
	}
	if len(f.models) > 0 {
		cfg.Models = f.models
	}
}

func (f flags) Config() string {
	return f.config
}

func (f flags) Variant() config.Variant {
	return f.variant
}

func (f flags) Verbose() bool {
	return f.verbose
}
