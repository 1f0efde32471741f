package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matanophir/Compi-3/internal/compiler"
)

// dump: print the scopes of one accepted program
func newDumpCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the scope dump of an accepted program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}

			opts := compilerOptions(cfg, cmd)
			opts.EntryFile = args[0]
			opts.DumpScopes = true

			result := compiler.Compile(opts)
			if !result.Success {
				fmt.Fprint(cmd.OutOrStdout(), result.Output)
				return errors.New("program rejected")
			}
			fmt.Fprint(cmd.OutOrStdout(), result.Scopes)
			return nil
		},
	}
}
