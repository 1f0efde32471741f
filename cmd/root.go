package cmd

import (
	"github.com/spf13/cobra"

	"github.com/matanophir/Compi-3/internal/compiler"
	"github.com/matanophir/Compi-3/internal/config"
)

const version = "0.1.0"

// flags shared by every subcommand
type rootFlags struct {
	configPath string
	debug      bool
	format     string
	entry      string
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "semant",
		Short: "Semantic analyzer for FanC syntax trees",
		Long: `semant checks FanC programs, given as YAML syntax tree fixtures, for
scoping and typing errors and prints the first violation it finds.

Commands:
  check  Analyze one or more programs
  dump   Print the scope dump of an accepted program
`,
		Version:      version,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML config file")
	pf.BoolVarP(&flags.debug, "debug", "d", false, "print phase and checker traces")
	pf.StringVar(&flags.format, "format", "", "diagnostic format: ansi, html or plain")
	pf.StringVar(&flags.entry, "entry", "", "name of the required 'void name()' function")

	rootCmd.AddCommand(newCheckCmd(flags), newDumpCmd(flags))
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig reads the config file, if any, then applies the flags the user
// set explicitly.
func (f *rootFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = f.debug
	}
	if flags.Changed("format") {
		cfg.Format = config.Format(f.format)
	}
	if flags.Changed("entry") {
		cfg.EntryFunction = f.entry
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func compilerOptions(cfg *config.Config, cmd *cobra.Command) *compiler.Options {
	format := compiler.ANSI
	switch cfg.Format {
	case config.FormatHTML:
		format = compiler.HTML
	case config.FormatPlain:
		format = compiler.PLAIN
	}
	return &compiler.Options{
		Debug:         cfg.Debug,
		Trace:         cmd.OutOrStdout(),
		DumpScopes:    cfg.DumpScopes,
		LogFormat:     format,
		EntryFunction: cfg.EntryFunction,
	}
}
