package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/relayops/cli/internal/config"
	"github.com/relayops/cli/internal/errors"
	"github.com/relayops/cli/internal/relay"
	"github.com/spf13/cobra"
)

func newProjectCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects"},
		Short:   "📁 Manage projects",
	}

	cmd.AddCommand(newListProjectsCommand(cfg))
	return cmd
}

func newListProjectsCommand(cfg *config.Config) *cobra.Command {
	var (
		outputFormat string
		refresh      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "📋 List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := relay.NewClient(cfg)

			var projects []relay.Project
			err := withSpinner("fetching projects...", func() error {
				var err error
				projects, err = client.Projects(cmd.Context(), refresh)
				return err
			})
			if err != nil {
				return errors.NetworkError(err)
			}

			if done, err := renderStructured(cmd.OutOrStdout(), outputFormat, projects); done {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "UUID\tNAME")
			for _, p := range projects {
				fmt.Fprintf(tw, "%s\t%s\n", p.UUID, p.Name)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json|yaml)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Bypass the directory cache")
	return cmd
}
