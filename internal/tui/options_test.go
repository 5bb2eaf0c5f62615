package tui

import (
	"testing"

	"github.com/relayops/cli/internal/relay"
	"github.com/stretchr/testify/assert"
)

func TestProjectOptions(t *testing.T) {
	t.Run("nil directory yields empty options", func(t *testing.T) {
		assert.Empty(t, ProjectOptions(nil))
	})

	t.Run("maps name and uuid", func(t *testing.T) {
		opts := ProjectOptions([]relay.Project{
			{UUID: "p1", Name: "Platform"},
			{UUID: "p2", Name: "Billing"},
		})
		assert.Equal(t, []Option{
			{Label: "Platform", Value: "p1"},
			{Label: "Billing", Value: "p2"},
		}, opts)
	})
}

func TestChannelOptions(t *testing.T) {
	t.Run("nil directory yields empty options", func(t *testing.T) {
		assert.Empty(t, ChannelOptions(nil))
	})

	t.Run("maps name and id", func(t *testing.T) {
		opts := ChannelOptions([]relay.Channel{{ID: "C1", Name: "alerts"}})
		assert.Equal(t, []Option{{Label: "alerts", Value: "C1"}}, opts)
	})
}
