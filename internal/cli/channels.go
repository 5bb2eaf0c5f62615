package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/relayops/cli/internal/config"
	"github.com/relayops/cli/internal/errors"
	"github.com/relayops/cli/internal/relay"
	"github.com/spf13/cobra"
)

func newChannelCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "channel",
		Aliases: []string{"channels"},
		Short:   "📣 Manage notification channels",
	}

	cmd.AddCommand(newListChannelsCommand(cfg))
	return cmd
}

func newListChannelsCommand(cfg *config.Config) *cobra.Command {
	var (
		outputFormat string
		refresh      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "📋 List notification channels",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := relay.NewClient(cfg)

			var channels []relay.Channel
			err := withSpinner("fetching channels...", func() error {
				var err error
				channels, err = client.Channels(cmd.Context(), refresh)
				return err
			})
			if err != nil {
				return errors.NetworkError(err)
			}

			if done, err := renderStructured(cmd.OutOrStdout(), outputFormat, channels); done {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME")
			for _, ch := range channels {
				fmt.Fprintf(tw, "%s\t#%s\n", ch.ID, ch.Name)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json|yaml)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Bypass the directory cache")
	return cmd
}
