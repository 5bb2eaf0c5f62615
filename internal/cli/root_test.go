package cli

import (
	"bytes"
	"testing"

	"github.com/relayops/cli/internal/config"
	"github.com/spf13/cobra"
)

func setupTestCommand(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{Use: "relay", SilenceUsage: true}
	root.AddCommand(
		newAgentCommand(cfg),
		newProjectCommand(cfg),
		newChannelCommand(cfg),
	)
	return root
}

func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err = root.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain string
	}{
		{
			name:        "help command",
			args:        []string{"--help"},
			wantErr:     false,
			wantContain: "Available Commands:",
		},
		{
			name:    "invalid command",
			args:    []string{"invalid"},
			wantErr: true,
		},
		{
			name:        "agent help",
			args:        []string{"agent", "--help"},
			wantErr:     false,
			wantContain: "Create, inspect, edit, and delete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{APIKey: "test-key", BaseURL: "http://unused"}
			got, err := executeCommand(setupTestCommand(cfg), tt.args...)

			if (err != nil) != tt.wantErr {
				t.Errorf("command error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantContain != "" && !bytes.Contains([]byte(got), []byte(tt.wantContain)) {
				t.Errorf("command output = %v, want to contain %v", got, tt.wantContain)
			}
		})
	}
}
