package relay

import (
	"context"
)

const (
	cacheKeyProjects = "projects"
	cacheKeyChannels = "channels"
)

// ListProjects retrieves the project directory from the API
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.get(ctx, "/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListChannels retrieves the notification channel directory from the API
func (c *Client) ListChannels(ctx context.Context) ([]Channel, error) {
	var channels []Channel
	if err := c.get(ctx, "/channels", &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// Projects returns the project directory, served from the cache when fresh.
// Passing refresh forces a refetch.
func (c *Client) Projects(ctx context.Context, refresh bool) ([]Project, error) {
	if refresh {
		c.directory.invalidate(cacheKeyProjects)
	} else if cached, ok := c.directory.get(cacheKeyProjects); ok {
		return cached.([]Project), nil
	}

	projects, err := c.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	c.directory.set(cacheKeyProjects, projects)
	return projects, nil
}

// Channels returns the channel directory, served from the cache when fresh.
// Passing refresh forces a refetch.
func (c *Client) Channels(ctx context.Context, refresh bool) ([]Channel, error) {
	if refresh {
		c.directory.invalidate(cacheKeyChannels)
	} else if cached, ok := c.directory.get(cacheKeyChannels); ok {
		return cached.([]Channel), nil
	}

	channels, err := c.ListChannels(ctx)
	if err != nil {
		return nil, err
	}
	c.directory.set(cacheKeyChannels, channels)
	return channels, nil
}
