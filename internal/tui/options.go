package tui

import "github.com/relayops/cli/internal/relay"

// Option is one label/value pair for a selection control.
type Option struct {
	Label string
	Value string
}

// ProjectOptions maps the project directory into selection options. A nil
// or not-yet-loaded directory yields an empty list, never an error.
func ProjectOptions(projects []relay.Project) []Option {
	opts := make([]Option, 0, len(projects))
	for _, p := range projects {
		opts = append(opts, Option{Label: p.Name, Value: p.UUID})
	}
	return opts
}

// ChannelOptions maps the channel directory into selection options.
func ChannelOptions(channels []relay.Channel) []Option {
	opts := make([]Option, 0, len(channels))
	for _, ch := range channels {
		opts = append(opts, Option{Label: ch.Name, Value: ch.ID})
	}
	return opts
}
