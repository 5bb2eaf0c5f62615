package cli

import (
	"github.com/relayops/cli/internal/config"
	"github.com/relayops/cli/internal/version"
	"github.com/spf13/cobra"
)

func Execute(cfg *config.Config) error {
	rootCmd := &cobra.Command{
		Use:   "relay",
		Short: "🤖 Relay CLI - Manage your conversational agents",
		Long: `Welcome to the Relay CLI! 👋

An administrative console for the Relay platform: create, inspect, edit,
and delete conversational agents and their notification integrations.

Quick Start:
  • List agents:       relay agent list
  • Create an agent:   relay agent create --interactive
  • Edit an agent:     relay agent edit <id> --interactive
  • List projects:     relay project list
  • List channels:     relay channel list`,
		Example: `  # Create an agent interactively
  relay agent create --interactive

  # Create an agent from flags
  relay agent create --name "Support Bot" --project 8f14e45f-ceea-467f-a34e-95678bd3a1c1 --channel C1

  # Delete an agent
  relay agent delete <id>`,
		Version:      version.GetVersion(),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newAgentCommand(cfg),
		newProjectCommand(cfg),
		newChannelCommand(cfg),
	)

	return rootCmd.Execute()
}
