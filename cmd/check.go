package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matanophir/Compi-3/colors"
	"github.com/matanophir/Compi-3/internal/compiler"
	"github.com/matanophir/Compi-3/internal/config"
)

// check: analyze programs
func newCheckCmd(flags *rootFlags) *cobra.Command {
	var dumpScopes bool

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Analyze FanC programs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dump-scopes") {
				cfg.DumpScopes = dumpScopes
			}

			results, bag := compiler.CompileAll(args, compilerOptions(cfg, cmd))

			out := cmd.OutOrStdout()
			for _, result := range results {
				if !result.Success {
					fmt.Fprint(out, result.Output)
					continue
				}
				if cfg.Format != config.FormatHTML {
					colors.GREEN.Fprintf(out, "✓ %s\n", result.Path)
				}
				fmt.Fprint(out, result.Scopes)
			}

			if rejected := bag.ErrorCount(); rejected > 0 {
				return fmt.Errorf("%d of %d program(s) rejected", rejected, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dumpScopes, "dump-scopes", false, "print the scope dump of accepted programs")
	return cmd
}
