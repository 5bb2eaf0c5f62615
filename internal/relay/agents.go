package relay

import (
	"context"
	"fmt"
)

// ListAgents retrieves all agents visible to the caller
func (c *Client) ListAgents(ctx context.Context) ([]Agent, error) {
	var agents []Agent
	if err := c.get(ctx, "/agents", &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// GetAgent retrieves a single agent by ID. A missing record is not an
// error: the API's 404 maps to (nil, nil) so callers can distinguish
// "absent" from a failed fetch.
func (c *Client) GetAgent(ctx context.Context, id string) (*Agent, error) {
	var agent Agent
	if err := c.get(ctx, fmt.Sprintf("/agents/%s", id), &agent); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &agent, nil
}

// CreateAgent creates a new agent from the draft and returns the persisted record
func (c *Client) CreateAgent(ctx context.Context, draft AgentDraft) (*Agent, error) {
	var agent Agent
	if err := c.post(ctx, "/agents", draft, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// UpdateAgent replaces the agent's editable fields wholesale with the draft
func (c *Client) UpdateAgent(ctx context.Context, id string, draft AgentDraft) (*Agent, error) {
	var agent Agent
	if err := c.put(ctx, fmt.Sprintf("/agents/%s", id), draft, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// DeleteAgent removes the agent by ID
func (c *Client) DeleteAgent(ctx context.Context, id string) error {
	return c.delete(ctx, fmt.Sprintf("/agents/%s", id))
}
