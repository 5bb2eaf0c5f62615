package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/relayops/cli/internal/relay"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// readDraftFile loads an agent draft from a JSON or YAML file. The format
// follows the extension; anything that is not .yaml/.yml is parsed as JSON.
func readDraftFile(fs afero.Fs, path string) (relay.AgentDraft, error) {
	var draft relay.AgentDraft

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return draft, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(data, &draft); err != nil {
			return draft, fmt.Errorf("failed to parse %s as YAML: %w", path, err)
		}
		return draft, nil
	}

	if err := json.Unmarshal(data, &draft); err != nil {
		return draft, fmt.Errorf("failed to parse %s as JSON: %w", path, err)
	}
	return draft, nil
}

// readDraftStdin reads a JSON agent draft from the given reader.
func readDraftStdin(r io.Reader) (relay.AgentDraft, error) {
	var draft relay.AgentDraft
	if err := json.NewDecoder(r).Decode(&draft); err != nil {
		return draft, fmt.Errorf("failed to parse stdin as JSON: %w", err)
	}
	return draft, nil
}
