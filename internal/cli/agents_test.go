package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/relayops/cli/internal/config"
	"github.com/relayops/cli/internal/relay"
)

type apiStub struct {
	server *httptest.Server

	agents   []relay.Agent
	projects []relay.Project
	channels []relay.Channel

	createdDraft *relay.AgentDraft
	updatedDraft *relay.AgentDraft
	updatedID    string
	deletedID    string
}

func newAPIStub(t *testing.T) (*apiStub, *config.Config) {
	t.Helper()
	stub := &apiStub{
		projects: []relay.Project{{UUID: "8f14e45f-ceea-467f-a34e-95678bd3a1c1", Name: "Platform"}},
		channels: []relay.Channel{{ID: "C1", Name: "alerts"}, {ID: "C2", Name: "support"}},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/projects", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(stub.projects)
	})
	mux.HandleFunc("/channels", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(stub.channels)
	})
	mux.HandleFunc("/agents", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(stub.agents)
		case http.MethodPost:
			var draft relay.AgentDraft
			json.NewDecoder(r.Body).Decode(&draft)
			stub.createdDraft = &draft
			json.NewEncoder(w).Encode(relay.Agent{UUID: "created-id", Name: draft.Name})
		}
	})
	mux.HandleFunc("/agents/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/agents/")
		switch r.Method {
		case http.MethodGet:
			for _, a := range stub.agents {
				if a.UUID == id {
					json.NewEncoder(w).Encode(a)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			var draft relay.AgentDraft
			json.NewDecoder(r.Body).Decode(&draft)
			stub.updatedDraft = &draft
			stub.updatedID = id
			json.NewEncoder(w).Encode(relay.Agent{UUID: id, Name: draft.Name})
		case http.MethodDelete:
			stub.deletedID = id
			w.WriteHeader(http.StatusOK)
		}
	})

	stub.server = httptest.NewServer(mux)
	t.Cleanup(stub.server.Close)

	return stub, &config.Config{APIKey: "test-key", BaseURL: stub.server.URL}
}

func TestAgentListCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain string
	}{
		{
			name:        "text table",
			args:        []string{"agent", "list"},
			wantContain: "Support Bot",
		},
		{
			name:        "json output",
			args:        []string{"agent", "list", "--output", "json"},
			wantContain: `"uuid": "a1"`,
		},
		{
			name:        "yaml output",
			args:        []string{"agent", "list", "-o", "yaml"},
			wantContain: "name: Support Bot",
		},
		{
			name:    "unknown output format",
			args:    []string{"agent", "list", "--output", "invalid"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub, cfg := newAPIStub(t)
			stub.agents = []relay.Agent{{UUID: "a1", Name: "Support Bot", ProjectUUID: "p1"}}

			got, err := executeCommand(setupTestCommand(cfg), tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("command error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantContain != "" && !strings.Contains(got, tt.wantContain) {
				t.Errorf("output %q does not contain %q", got, tt.wantContain)
			}
		})
	}
}

func TestAgentGetCommand(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		stub, cfg := newAPIStub(t)
		stub.agents = []relay.Agent{{
			UUID:         "a1",
			Name:         "Support Bot",
			ProjectUUID:  "p1",
			Integrations: []relay.Integration{{Type: relay.IntegrationTypeSlack, ChannelID: "C1"}},
		}}

		got, err := executeCommand(setupTestCommand(cfg), "agent", "get", "a1")
		if err != nil {
			t.Fatalf("command error = %v", err)
		}
		for _, want := range []string{"Support Bot", "slack C1"} {
			if !strings.Contains(got, want) {
				t.Errorf("output %q does not contain %q", got, want)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, cfg := newAPIStub(t)

		_, err := executeCommand(setupTestCommand(cfg), "agent", "get", "missing")
		if err == nil {
			t.Fatal("expected not-found error")
		}
		if !strings.Contains(err.Error(), "no agent with ID missing") {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestAgentCreateCommand(t *testing.T) {
	t.Run("create from flags dispatches the draft", func(t *testing.T) {
		stub, cfg := newAPIStub(t)

		got, err := executeCommand(setupTestCommand(cfg),
			"agent", "create",
			"--name", "Support Bot",
			"--project", "8f14e45f-ceea-467f-a34e-95678bd3a1c1",
			"--channel", "C1",
			"--tag", "support",
		)
		if err != nil {
			t.Fatalf("command error = %v", err)
		}

		if stub.createdDraft == nil {
			t.Fatal("no create dispatch reached the API")
		}
		if stub.createdDraft.Name != "Support Bot" {
			t.Errorf("dispatched name = %q", stub.createdDraft.Name)
		}
		if len(stub.createdDraft.Integrations) != 1 || stub.createdDraft.Integrations[0].ChannelID != "C1" {
			t.Errorf("dispatched integrations = %+v", stub.createdDraft.Integrations)
		}
		if !strings.Contains(got, "Created agent created-id") {
			t.Errorf("output %q missing confirmation", got)
		}
	})

	t.Run("invalid draft never reaches the network", func(t *testing.T) {
		stub, cfg := newAPIStub(t)

		_, err := executeCommand(setupTestCommand(cfg),
			"agent", "create", "--name", "Support Bot", "--project", "not-a-uuid")
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "must be a valid UUID") {
			t.Errorf("unexpected error: %v", err)
		}
		if stub.createdDraft != nil {
			t.Error("invalid draft was dispatched")
		}
	})

	t.Run("unknown project is rejected against the directory", func(t *testing.T) {
		stub, cfg := newAPIStub(t)

		_, err := executeCommand(setupTestCommand(cfg),
			"agent", "create",
			"--name", "Support Bot",
			"--project", "11111111-2222-3333-4444-555555555555")
		if err == nil {
			t.Fatal("expected reference error")
		}
		if !strings.Contains(err.Error(), "does not exist") {
			t.Errorf("unexpected error: %v", err)
		}
		if stub.createdDraft != nil {
			t.Error("draft with dangling project was dispatched")
		}
	})
}

func TestAgentEditCommand(t *testing.T) {
	stub, cfg := newAPIStub(t)
	stub.agents = []relay.Agent{{
		UUID:         "X",
		Name:         "Old",
		ProjectUUID:  "8f14e45f-ceea-467f-a34e-95678bd3a1c1",
		Integrations: []relay.Integration{{Type: relay.IntegrationTypeSlack, ChannelID: "C1"}},
	}}

	got, err := executeCommand(setupTestCommand(cfg),
		"agent", "edit", "X", "--name", "New")
	if err != nil {
		t.Fatalf("command error = %v", err)
	}

	if stub.updatedID != "X" {
		t.Errorf("update dispatched for %q, want X", stub.updatedID)
	}
	if stub.updatedDraft == nil || stub.updatedDraft.Name != "New" {
		t.Fatalf("dispatched draft = %+v", stub.updatedDraft)
	}
	// Full replace: the untouched fields ride along from the seed.
	if len(stub.updatedDraft.Integrations) != 1 || stub.updatedDraft.Integrations[0].ChannelID != "C1" {
		t.Errorf("seeded integrations lost: %+v", stub.updatedDraft.Integrations)
	}
	if !strings.Contains(got, "Updated agent X") {
		t.Errorf("output %q missing confirmation", got)
	}
}

func TestAgentEditNotFound(t *testing.T) {
	_, cfg := newAPIStub(t)

	_, err := executeCommand(setupTestCommand(cfg), "agent", "edit", "ghost", "--name", "New")
	if err == nil {
		t.Fatal("expected not-found error")
	}
	if !strings.Contains(err.Error(), "no agent with ID ghost") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAgentDeleteCommand(t *testing.T) {
	stub, cfg := newAPIStub(t)
	stub.agents = []relay.Agent{{UUID: "X", Name: "Old"}}

	got, err := executeCommand(setupTestCommand(cfg), "agent", "delete", "X", "--yes")
	if err != nil {
		t.Fatalf("command error = %v", err)
	}
	if stub.deletedID != "X" {
		t.Errorf("delete dispatched for %q, want X", stub.deletedID)
	}
	if !strings.Contains(got, "Deleted agent X") {
		t.Errorf("output %q missing confirmation", got)
	}
}

func TestDirectoryListCommands(t *testing.T) {
	_, cfg := newAPIStub(t)

	got, err := executeCommand(setupTestCommand(cfg), "project", "list")
	if err != nil {
		t.Fatalf("project list error = %v", err)
	}
	if !strings.Contains(got, "Platform") {
		t.Errorf("project list output %q", got)
	}

	got, err = executeCommand(setupTestCommand(cfg), "channel", "list", "--refresh")
	if err != nil {
		t.Fatalf("channel list error = %v", err)
	}
	if !strings.Contains(got, "#alerts") {
		t.Errorf("channel list output %q", got)
	}
}
