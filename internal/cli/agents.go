package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/relayops/cli/internal/config"
	"github.com/relayops/cli/internal/errors"
	"github.com/relayops/cli/internal/relay"
	"github.com/relayops/cli/internal/style"
	"github.com/relayops/cli/internal/tui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newAgentCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "agent",
		Aliases: []string{"agents"},
		Short:   "🤖 Manage agents",
		Long:    `Create, inspect, edit, and delete conversational agent configurations.`,
	}

	cmd.AddCommand(
		newListAgentsCommand(cfg),
		newGetAgentCommand(cfg),
		newCreateAgentCommand(cfg),
		newEditAgentCommand(cfg),
		newDeleteAgentCommand(cfg),
	)

	return cmd
}

func newListAgentsCommand(cfg *config.Config) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "📋 List agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := relay.NewClient(cfg)

			var agents []relay.Agent
			err := withSpinner("fetching agents...", func() error {
				var err error
				agents, err = client.ListAgents(cmd.Context())
				return err
			})
			if err != nil {
				return errors.NetworkError(err)
			}

			if done, err := renderStructured(cmd.OutOrStdout(), outputFormat, agents); done {
				return err
			}
			return renderAgentsTable(cmd.OutOrStdout(), agents)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json|yaml)")
	return cmd
}

func newGetAgentCommand(cfg *config.Config) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "🔍 Show one agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := relay.NewClient(cfg)

			var agent *relay.Agent
			err := withSpinner("fetching agent...", func() error {
				var err error
				agent, err = client.GetAgent(cmd.Context(), args[0])
				return err
			})
			if err != nil {
				return errors.NetworkError(err)
			}
			if agent == nil {
				return errors.NotFoundErrorWithContext(
					fmt.Errorf("no agent with ID %s", args[0]),
					"Run 'relay agent list' to see the available agents.")
			}

			if done, err := renderStructured(cmd.OutOrStdout(), outputFormat, agent); done {
				return err
			}
			renderAgentDetail(cmd.OutOrStdout(), agent)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json|yaml)")
	return cmd
}

func newCreateAgentCommand(cfg *config.Config) *cobra.Command {
	var (
		interactive bool
		name        string
		project     string
		channels    []string
		tags        []string
		inputFile   string
		fromStdin   bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "➕ Create a new agent",
		Example: `  # Create interactively
  relay agent create --interactive

  # Create from flags
  relay agent create --name "Support Bot" \
    --project 8f14e45f-ceea-467f-a34e-95678bd3a1c1 \
    --channel C1 --channel C2 --tag support

  # Create from a file
  relay agent create --file agent.yaml

  # Create from stdin
  cat agent.json | relay agent create --stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return runAgentForm(cfg, tui.CreateSentinel, cmd.OutOrStdout())
			}

			draft, err := resolveDraftInput(afero.NewOsFs(), cmd.InOrStdin(), inputFile, fromStdin)
			if err != nil {
				return errors.ValidationError(err, "Provide a JSON or YAML agent draft.")
			}

			applyDraftFlags(cmd, &draft, name, project, channels, tags)

			if err := validateDraft(draft); err != nil {
				return err
			}
			if err := checkReferences(cmd.Context(), relay.NewClient(cfg), draft); err != nil {
				return err
			}

			client := relay.NewClient(cfg)
			var created *relay.Agent
			err = withSpinner("creating agent...", func() error {
				var err error
				created, err = client.CreateAgent(cmd.Context(), draft)
				return err
			})
			if err != nil {
				return errors.MutationError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.SuccessStyle.Render("✓")+" Created agent "+created.UUID)
			return showAgentList(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Use the interactive form")
	cmd.Flags().StringVar(&name, "name", "", "Agent display name")
	cmd.Flags().StringVar(&project, "project", "", "Target project UUID")
	cmd.Flags().StringArrayVar(&channels, "channel", nil, "Notification channel ID (repeatable)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "Read the draft from a JSON/YAML file")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read a JSON draft from stdin")
	return cmd
}

func newEditAgentCommand(cfg *config.Config) *cobra.Command {
	var (
		interactive bool
		name        string
		project     string
		channels    []string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "✏️ Edit an existing agent",
		Args:  cobra.ExactArgs(1),
		Example: `  # Edit interactively
  relay agent edit 8b29f1d2 --interactive

  # Rename without touching the rest
  relay agent edit 8b29f1d2 --name "Tier 1 Support"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return runAgentForm(cfg, args[0], cmd.OutOrStdout())
			}

			client := relay.NewClient(cfg)

			var agent *relay.Agent
			err := withSpinner("fetching agent...", func() error {
				var err error
				agent, err = client.GetAgent(cmd.Context(), args[0])
				return err
			})
			if err != nil {
				return errors.NetworkError(err)
			}
			if agent == nil {
				return errors.NotFoundErrorWithContext(
					fmt.Errorf("no agent with ID %s", args[0]),
					"Run 'relay agent list' to see the available agents.")
			}

			// Updates are full-replace: seed the draft from the current
			// record, then apply only the flags that were set.
			state := tui.NewEditDraft()
			state.SeedFrom(agent)
			draft := state.Draft
			applyDraftFlags(cmd, &draft, name, project, channels, tags)

			if err := validateDraft(draft); err != nil {
				return err
			}
			if err := checkReferences(cmd.Context(), client, draft); err != nil {
				return err
			}

			var updated *relay.Agent
			err = withSpinner("saving agent...", func() error {
				var err error
				updated, err = client.UpdateAgent(cmd.Context(), args[0], draft)
				return err
			})
			if err != nil {
				return errors.MutationError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.SuccessStyle.Render("✓")+" Updated agent "+updated.UUID)
			return showAgentList(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Use the interactive form")
	cmd.Flags().StringVar(&name, "name", "", "Agent display name")
	cmd.Flags().StringVar(&project, "project", "", "Target project UUID")
	cmd.Flags().StringArrayVar(&channels, "channel", nil, "Notification channel ID (repeatable, replaces the current set)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag (repeatable, replaces the current set)")
	return cmd
}

func newDeleteAgentCommand(cfg *config.Config) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "🗑️ Delete an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return errors.ValidationError(
						fmt.Errorf("refusing to delete without confirmation"),
						"Re-run with --yes to skip the prompt.")
				}
				prompt := promptui.Prompt{
					Label:     fmt.Sprintf("Delete agent %s", args[0]),
					IsConfirm: true,
				}
				if _, err := prompt.Run(); err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			client := relay.NewClient(cfg)
			err := withSpinner("deleting agent...", func() error {
				return client.DeleteAgent(cmd.Context(), args[0])
			})
			if err != nil {
				return errors.MutationError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.SuccessStyle.Render("✓")+" Deleted agent "+args[0])
			return showAgentList(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// runAgentForm drives the interactive form and, when it exits with a
// navigate-to-list outcome, shows the refreshed agent list.
func runAgentForm(cfg *config.Config, routeID string, w io.Writer) error {
	form := tui.NewAgentForm(cfg, routeID)
	outcome, err := form.Run()
	if err != nil {
		return errors.RuntimeError(err)
	}
	if outcome == tui.OutcomeNavigateList {
		return showAgentList(cfg, w)
	}
	return nil
}

func showAgentList(cfg *config.Config, w io.Writer) error {
	client := relay.NewClient(cfg)
	agents, err := client.ListAgents(context.Background())
	if err != nil {
		return errors.NetworkError(err)
	}
	return renderAgentsTable(w, agents)
}

// resolveDraftInput picks the draft source: file, stdin, or empty (flags only).
func resolveDraftInput(fs afero.Fs, stdin io.Reader, inputFile string, fromStdin bool) (relay.AgentDraft, error) {
	switch {
	case inputFile != "":
		return readDraftFile(fs, inputFile)
	case fromStdin:
		return readDraftStdin(stdin)
	default:
		return relay.AgentDraft{}, nil
	}
}

// applyDraftFlags overlays explicitly set flags onto the draft.
func applyDraftFlags(cmd *cobra.Command, draft *relay.AgentDraft, name, project string, channels, tags []string) {
	if cmd.Flags().Changed("name") {
		draft.Name = name
	}
	if cmd.Flags().Changed("project") {
		draft.ProjectUUID = project
	}
	if cmd.Flags().Changed("channel") {
		integrations := make([]relay.Integration, 0, len(channels))
		for _, ch := range channels {
			integrations = append(integrations, relay.Integration{
				Type:      relay.IntegrationTypeSlack,
				ChannelID: ch,
			})
		}
		draft.Integrations = integrations
	}
	if cmd.Flags().Changed("tag") {
		draft.Tags = tags
	}
}

// validateDraft runs the form's field validation and maps failures onto a
// flag-level validation error.
func validateDraft(draft relay.AgentDraft) error {
	state := tui.NewCreateDraft()
	state.Draft = draft

	fieldErrs := state.Validate()
	if len(fieldErrs) == 0 {
		return nil
	}

	msg := "invalid agent draft:"
	for _, field := range []string{"name", "project", "integrations"} {
		if m, ok := fieldErrs[field]; ok {
			msg += fmt.Sprintf("\n  %s: %s", field, m)
		}
	}
	return errors.ValidationError(fmt.Errorf("%s", msg), "Fix the fields above and retry.")
}

// checkReferences verifies the draft's project and channels against the
// directories. Both fetches run in parallel; a failed directory fetch
// skips the check rather than blocking the mutation.
func checkReferences(ctx context.Context, client *relay.Client, draft relay.AgentDraft) error {
	var (
		projects []relay.Project
		channels []relay.Channel
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = client.Projects(gctx, false)
		return err
	})
	g.Go(func() error {
		var err error
		channels, err = client.Channels(gctx, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil
	}

	known := make(map[string]bool, len(projects))
	for _, p := range projects {
		known[p.UUID] = true
	}
	if !known[draft.ProjectUUID] {
		return errors.ValidationError(
			fmt.Errorf("project %s does not exist", draft.ProjectUUID),
			"Run 'relay project list' to see the available projects.")
	}

	knownCh := make(map[string]bool, len(channels))
	for _, ch := range channels {
		knownCh[ch.ID] = true
	}
	for _, in := range draft.Integrations {
		if !knownCh[in.ChannelID] {
			return errors.ValidationError(
				fmt.Errorf("channel %s does not exist", in.ChannelID),
				"Run 'relay channel list' to see the available channels.")
		}
	}

	return nil
}
