// Package main provides the CLI entry point for flo.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"flo/internal/config"
	"flo/internal/log"
	"flo/internal/tui"
)

type options struct {
	configPath string
	logPath    string
	debug      bool

	cfg     config.Config
	cfgPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "flo [history.csv]",
		Short: "Count glasses of water in the terminal",
		Long: `flo counts the glasses of water drunk today on an arc gauge and plots
the last days on a graph. A CSV file with a glasses column may be given
to replace the history.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: flo.toml in the working directory or config folders)")
	rootCmd.PersistentFlags().StringVar(&opts.logPath, "log", "", "Log file; empty disables logging (default: flo.log in the cache folder)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log debug entries")

	rootCmd.AddCommand(newRenderCmd(opts), newConfigCmd(opts))
	return rootCmd
}

// setup loads the config, applies flag overrides and starts logging.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, from, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("log") {
		cfg.LogFile = o.logPath
	}
	if o.debug {
		cfg.Debug = true
	}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return fmt.Errorf("failed to create log folder: %w", err)
		}
	}
	if err := log.Init(cfg.LogFile, cfg.Debug); err != nil {
		return err
	}
	if from == "" {
		log.Infow("no config file, using defaults")
	} else {
		log.Infow("config loaded", "path", from)
	}
	for _, k := range cfg.Unknown {
		log.Warnw("unknown config key", "key", k, "path", from)
	}
	o.cfg, o.cfgPath = cfg, from
	return nil
}

func runTUI(opts *options, args []string) error {
	path := opts.cfg.HistoryFile
	if len(args) > 0 {
		path = args[0]
	}
	m, err := tui.NewWithPath(opts.cfg, path)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Errorw("program failed", "error", err)
		return err
	}
	return nil
}
