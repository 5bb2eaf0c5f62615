package tui

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/relayops/cli/internal/relay"
)

// AgentDraftState owns the editable working copy of an agent. The draft is
// seeded at most once per form lifetime, so a background refetch of the
// source record can never clobber user edits.
type AgentDraftState struct {
	Draft  relay.AgentDraft
	seeded bool
}

// NewCreateDraft returns the empty draft for create mode. It is seeded
// immediately since there is nothing to wait for.
func NewCreateDraft() *AgentDraftState {
	return &AgentDraftState{
		Draft: relay.AgentDraft{
			Integrations: []relay.Integration{},
			Tags:         []string{},
		},
		seeded: true,
	}
}

// NewEditDraft returns an unseeded draft that waits for the first
// successful load of the record.
func NewEditDraft() *AgentDraftState {
	return &AgentDraftState{}
}

// Seeded reports whether the draft has been populated, either from a
// loaded agent or as the create-mode defaults.
func (s *AgentDraftState) Seeded() bool {
	return s.seeded
}

// SeedFrom copies the agent's editable fields into the draft and reports
// whether the seed was applied. It applies at most once: on an already
// seeded draft the call is ignored, whatever the agent now contains.
func (s *AgentDraftState) SeedFrom(agent *relay.Agent) bool {
	if s.seeded || agent == nil {
		return false
	}

	s.Draft.Name = agent.Name
	s.Draft.ProjectUUID = agent.ProjectUUID
	s.Draft.Integrations = append([]relay.Integration{}, agent.Integrations...)
	if agent.Tags != nil {
		s.Draft.Tags = append([]string{}, agent.Tags...)
	} else {
		s.Draft.Tags = nil
	}
	s.seeded = true
	return true
}

// ChannelIDs projects the integration collection down to the flat channel
// selection the form's picker works with.
func (s *AgentDraftState) ChannelIDs() []string {
	ids := make([]string, 0, len(s.Draft.Integrations))
	for _, in := range s.Draft.Integrations {
		ids = append(ids, in.ChannelID)
	}
	return ids
}

// SetChannelIDs rebuilds the integration collection from the picker's
// selection: one slack entry per ID in selection order, previous entries
// not in the new selection dropped. This is a full replace, not a diff.
// Empty IDs are skipped so the draft never carries an integration without
// a channel.
func (s *AgentDraftState) SetChannelIDs(ids []string) {
	integrations := make([]relay.Integration, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		integrations = append(integrations, relay.Integration{
			Type:      relay.IntegrationTypeSlack,
			ChannelID: id,
		})
	}
	s.Draft.Integrations = integrations
}

const (
	msgRequired      = "required"
	msgInvalidFormat = "must be a valid UUID"
)

// Validate checks the draft and returns a field-to-message map for every
// invalid field. An empty map means the draft may be submitted.
func (s *AgentDraftState) Validate() map[string]string {
	errs := make(map[string]string)

	if s.Draft.Name == "" {
		errs["name"] = msgRequired
	}

	switch {
	case s.Draft.ProjectUUID == "":
		errs["project"] = msgRequired
	default:
		if _, err := uuid.Parse(s.Draft.ProjectUUID); err != nil {
			errs["project"] = msgInvalidFormat
		}
	}

	// A malformed integration rejects the whole draft, not just the entry.
	for i, in := range s.Draft.Integrations {
		if in.Type != relay.IntegrationTypeSlack {
			errs["integrations"] = fmt.Sprintf("entry %d has unsupported type %q", i+1, in.Type)
			break
		}
		if in.ChannelID == "" {
			errs["integrations"] = fmt.Sprintf("entry %d is missing a channel", i+1)
			break
		}
	}

	return errs
}
