package relay

// IntegrationTypeSlack is the only integration variant the API accepts today.
// The tagged shape leaves room for future variants.
const IntegrationTypeSlack = "slack"

// Integration binds an agent to one outbound notification channel
type Integration struct {
	Type      string `json:"type" yaml:"type"`
	ChannelID string `json:"channel_id" yaml:"channel_id"`
}

// Agent represents a persisted conversational-agent configuration record
type Agent struct {
	UUID         string        `json:"uuid"`
	Name         string        `json:"name"`
	ProjectUUID  string        `json:"project_uuid"`
	Tags         []string      `json:"tags,omitempty"`
	Integrations []Integration `json:"integrations"`
	Metadata     struct {
		CreatedAt   string `json:"created_at"`
		LastUpdated string `json:"last_updated"`
	} `json:"metadata"`
}

// AgentDraft is the editable subset of an Agent, and the payload of create
// and full-replace update requests. A nil Tags slice means tags are
// explicitly absent, which is distinct from an empty list.
type AgentDraft struct {
	Name         string        `json:"name" yaml:"name"`
	ProjectUUID  string        `json:"project_uuid" yaml:"project_uuid"`
	Integrations []Integration `json:"integrations" yaml:"integrations"`
	Tags         []string      `json:"tags" yaml:"tags"`
}

// Project is an entry in the project directory
type Project struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// Channel is an entry in the notification channel directory
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
