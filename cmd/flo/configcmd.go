package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"flo/internal/log"
)

func newConfigCmd(opts *options) *cobra.Command {
	var (
		write bool
		to    string
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective config, or save it with --write",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				if opts.cfgPath != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", opts.cfgPath)
				}
				return opts.cfg.Encode(cmd.OutOrStdout())
			}
			path, err := opts.cfg.Write(to)
			if err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			log.Infow("config written", "path", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Save the config instead of printing it")
	cmd.Flags().StringVar(&to, "to", "", "File to save to (default: flo.toml in the user config folder)")
	return cmd
}
