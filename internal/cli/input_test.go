package cli

import (
	"strings"
	"testing"

	"github.com/relayops/cli/internal/relay"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDraftFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	jsonDraft := `{
		"name": "Support Bot",
		"project_uuid": "8f14e45f-ceea-467f-a34e-95678bd3a1c1",
		"integrations": [{"type": "slack", "channel_id": "C1"}],
		"tags": ["support"]
	}`
	require.NoError(t, afero.WriteFile(fs, "agent.json", []byte(jsonDraft), 0644))

	yamlDraft := `name: Support Bot
project_uuid: 8f14e45f-ceea-467f-a34e-95678bd3a1c1
integrations:
  - type: slack
    channel_id: C1
tags:
  - support
`
	require.NoError(t, afero.WriteFile(fs, "agent.yaml", []byte(yamlDraft), 0644))

	want := relay.AgentDraft{
		Name:         "Support Bot",
		ProjectUUID:  "8f14e45f-ceea-467f-a34e-95678bd3a1c1",
		Integrations: []relay.Integration{{Type: relay.IntegrationTypeSlack, ChannelID: "C1"}},
		Tags:         []string{"support"},
	}

	t.Run("json", func(t *testing.T) {
		draft, err := readDraftFile(fs, "agent.json")
		require.NoError(t, err)
		assert.Equal(t, want, draft)
	})

	t.Run("yaml", func(t *testing.T) {
		draft, err := readDraftFile(fs, "agent.yaml")
		require.NoError(t, err)
		assert.Equal(t, want, draft)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readDraftFile(fs, "nope.json")
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "bad.json", []byte("{"), 0644))
		_, err := readDraftFile(fs, "bad.json")
		assert.Error(t, err)
	})
}

func TestReadDraftStdin(t *testing.T) {
	draft, err := readDraftStdin(strings.NewReader(`{"name":"Support Bot","tags":null}`))
	require.NoError(t, err)
	assert.Equal(t, "Support Bot", draft.Name)
	assert.Nil(t, draft.Tags, "null tags stay absent")

	_, err = readDraftStdin(strings.NewReader("not json"))
	assert.Error(t, err)
}
