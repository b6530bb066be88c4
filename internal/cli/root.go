package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/softwaremanager/internal/config"
	"github.com/jask/softwaremanager/internal/logging"
	"github.com/jask/softwaremanager/internal/store"
	"github.com/jask/softwaremanager/internal/tui"
)

// Runner starts the interactive UI for a loaded configuration.
type Runner func(ctx context.Context, cfg config.Config) error

// NewRootCommand creates the root command. run is called when no subcommand
// is given.
func NewRootCommand(run Runner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "softwaremanager",
		Short: "Browse and manage software projects",
		Long: `A terminal project manager with Dashboard, Collections, Articles,
Learners and Reports panes.

Projects listed under [[projects]] in the config file are loaded at start.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.config/softwaremanager/config.toml)")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().String("route", "", "pane to open first")
	rootCmd.Flags().Bool("no-alt-screen", false, "render inline instead of using the alternate screen")

	rootCmd.AddCommand(NewRoutesCommand())
	rootCmd.AddCommand(NewProjectsCommand())

	return rootCmd
}

// RunUI wires logging, the store and the terminal host, then blocks until
// the user quits.
func RunUI(ctx context.Context, cfg config.Config) error {
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := store.New(
		store.WithProjects(cfg.SeedProjects()),
		store.WithRoute(cfg.Route()),
		store.WithLogger(logger.Named("store")),
	)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	logger.Info("starting", zap.Int("projects", st.Len()), zap.Stringer("route", st.Route()))

	app := tui.New(st, tui.Options{SidebarWidth: cfg.UI.SidebarWidth, Logger: logger.Named("tui")})
	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if err := tui.Run(ctx, app, opts...); err != nil {
		logger.Error("program exited", zap.Error(err))
		return err
	}
	return nil
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	if err := NewRootCommand(RunUI).ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}
