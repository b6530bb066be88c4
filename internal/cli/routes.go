package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jask/softwaremanager/internal/config"
	"github.com/jask/softwaremanager/internal/models"
)

// NewRoutesCommand lists the panes with their shortcut keys.
func NewRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List navigable panes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for i, r := range models.Routes() {
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, r, r.Title())
			}
			return w.Flush()
		},
	}
}

// NewProjectsCommand prints the projects the config file seeds.
func NewProjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List projects loaded from the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			projects := cfg.SeedProjects()
			if len(projects) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no projects configured")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tLANGUAGE\tPATH")
			for _, p := range projects {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Language, p.Path)
			}
			return w.Flush()
		},
	}
}
