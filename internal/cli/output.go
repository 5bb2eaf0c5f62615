package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/relayops/cli/internal/relay"
	"gopkg.in/yaml.v3"
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}

// renderStructured handles the json/yaml output formats shared by the
// read-side commands.
func renderStructured(w io.Writer, format string, v interface{}) (bool, error) {
	switch format {
	case "json":
		return true, printJSON(w, v)
	case "yaml":
		return true, printYAML(w, v)
	case "", "text":
		return false, nil
	default:
		return true, fmt.Errorf("unknown output format: %s", format)
	}
}

func renderAgentsTable(w io.Writer, agents []relay.Agent) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "UUID\tNAME\tPROJECT\tCHANNELS\tTAGS")
	for _, a := range agents {
		channels := make([]string, 0, len(a.Integrations))
		for _, in := range a.Integrations {
			channels = append(channels, in.ChannelID)
		}
		tags := "-"
		if a.Tags != nil {
			tags = strings.Join(a.Tags, ",")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			a.UUID, a.Name, a.ProjectUUID, strings.Join(channels, ","), tags)
	}
	return tw.Flush()
}

func renderAgentDetail(w io.Writer, agent *relay.Agent) {
	fmt.Fprintf(w, "UUID:     %s\n", agent.UUID)
	fmt.Fprintf(w, "Name:     %s\n", agent.Name)
	fmt.Fprintf(w, "Project:  %s\n", agent.ProjectUUID)
	if agent.Tags == nil {
		fmt.Fprintln(w, "Tags:     (absent)")
	} else {
		fmt.Fprintf(w, "Tags:     %s\n", strings.Join(agent.Tags, ", "))
	}
	fmt.Fprintf(w, "Integrations (%d):\n", len(agent.Integrations))
	for _, in := range agent.Integrations {
		fmt.Fprintf(w, "  • %s %s\n", in.Type, in.ChannelID)
	}
	if agent.Metadata.CreatedAt != "" {
		fmt.Fprintf(w, "Created:  %s\n", agent.Metadata.CreatedAt)
	}
}

// withSpinner shows a progress spinner around slow fetches when stdout is
// a terminal; in pipes and tests it just runs fn.
func withSpinner(suffix string, fn func() error) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fn()
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + suffix
	s.Start()
	defer s.Stop()
	return fn()
}
