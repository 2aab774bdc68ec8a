package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sadopc/chatstyle/internal/config"
	"github.com/sadopc/chatstyle/internal/theme"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// flags are the persistent flags shared by every command. They override
// the config file and the environment when set.
type flags struct {
	config   string
	preset   string
	preview  bool
	format   string
	selector string
	color    bool
	palette  string
}

// env is what a command runs with once config, environment and flags have
// been merged.
type env struct {
	cfg    *config.Config
	logger *log.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "chatstyle",
		Short: "Resolve chat widget themes into CSS variables",
		Long: `chatstyle turns a partial chat widget theme into the full set of
CSS custom properties a widget renders from, filling defaults and deriving
contrast colours on the way.

Examples:
  chatstyle resolve theme.yaml                 # CSS variables for a theme file
  chatstyle resolve --preset dark -o json      # A built-in preset as JSON
  chatstyle preview theme.yaml                 # Terminal swatch of the result
  chatstyle vars bubble                        # Find variables by name
  chatstyle edit theme.yaml                    # Interactive editor`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "Config file path")
	pf.StringVarP(&f.preset, "preset", "p", "", "Preset to use when no theme file is given")
	pf.BoolVar(&f.preview, "preview", false, "Resolve as in the builder preview")
	pf.StringVarP(&f.format, "format", "o", "", "Output format (css, json, yaml)")
	pf.StringVar(&f.selector, "selector", "", "CSS selector for the variable rule")
	pf.BoolVar(&f.color, "color", false, "Highlight CSS output")
	pf.StringVar(&f.palette, "palette", "", "Editor palette (default, light, mono)")

	setup := func(cmd *cobra.Command) (*env, error) {
		return f.load(cmd)
	}

	rootCmd.AddCommand(
		newResolveCmd(setup),
		newPreviewCmd(setup),
		newVarsCmd(setup),
		newPresetsCmd(setup),
		newEditCmd(setup),
		newConfigCmd(setup),
		newVersionCmd(),
	)
	return rootCmd
}

// load merges the config file, CHATSTYLE_* variables and explicitly set
// flags, in that order, and builds the logger.
func (f *flags) load(cmd *cobra.Command) (*env, error) {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "chatstyle"})

	var cfg *config.Config
	var err error
	if f.config != "" {
		cfg, err = config.Load(f.config)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		logger.Warn("could not load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("preset") {
		cfg.Preset = f.preset
	}
	if fl.Changed("preview") {
		cfg.Preview = f.preview
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("selector") {
		cfg.Selector = f.selector
	}
	if fl.Changed("color") {
		cfg.Color = f.color
	}
	if fl.Changed("palette") {
		cfg.Editor.Palette = f.palette
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := log.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)
	logger.Debug("configuration loaded",
		"preset", cfg.Preset, "preview", cfg.Preview, "format", cfg.Format)

	return &env{cfg: cfg, logger: logger}, nil
}

// loadTheme reads the theme file named by args, or builds the configured
// preset when there is none. The second result names the source.
func (e *env) loadTheme(args []string) (*theme.Theme, string, error) {
	if len(args) > 0 && args[0] != "" {
		th, err := theme.Load(args[0])
		if err != nil {
			return nil, "", err
		}
		e.logger.Debug("theme loaded", "path", args[0])
		return th, args[0], nil
	}
	e.logger.Debug("using preset", "preset", e.cfg.Preset)
	return theme.Get(e.cfg.Preset), e.cfg.Preset, nil
}
