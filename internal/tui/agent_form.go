package tui

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/relayops/cli/internal/config"
	"github.com/relayops/cli/internal/relay"
	"github.com/relayops/cli/internal/style"
)

// FormPage represents the pages of the agent form
type FormPage int

const (
	DetailsPage FormPage = iota
	ChannelsPage
	ConfirmPage
)

// loadState tracks the outcome of the edit-mode entity fetch
type loadState int

const (
	loadIdle loadState = iota // create mode, no fetch
	loadPending
	loadFound
	loadNotFound
)

// FormOutcome is what the form reports to its caller on exit
type FormOutcome int

const (
	// OutcomeCancelled means the operator backed out without submitting
	OutcomeCancelled FormOutcome = iota
	// OutcomeNavigateList means a submit or delete succeeded (or the
	// not-found view's return action fired) and the caller should show
	// the agent list
	OutcomeNavigateList
)

// Messages for the agent form
type (
	agentLoadedMsg struct {
		agent *relay.Agent // nil means the record is absent
	}
	agentLoadFailedMsg struct {
		err error
	}
	projectsLoadedMsg []relay.Project
	channelsLoadedMsg []relay.Channel
	submitDoneMsg     struct{}
	submitFailedMsg   struct {
		err error
	}
	deleteDoneMsg   struct{}
	deleteFailedMsg struct {
		err error
	}
)

const (
	nameField = iota
	projectField
	tagsField
	fieldCount
)

// AgentForm is the create/edit view for a single agent record
type AgentForm struct {
	cfg    *config.Config
	client *relay.Client

	mode    FormMode
	agentID string

	draft *AgentDraftState
	load  loadState

	inputs []textinput.Model
	focus  int

	// Channel picker state. selectedChannels keeps selection order; every
	// toggle rebuilds the draft's integration collection wholesale.
	channels         []relay.Channel
	channelsLoading  bool
	channelCursor    int
	selectedChannels []string

	projects []relay.Project

	submitting bool
	deleting   bool

	fieldErrs map[string]string
	notice    string
	loadErr   error

	page    FormPage
	outcome FormOutcome
	spin    spinner.Model

	width, height int
}

// NewAgentForm builds the form for a route identifier, which is either the
// create sentinel or an agent ID.
func NewAgentForm(cfg *config.Config, routeID string) *AgentForm {
	mode, agentID := ResolveFormMode(routeID)

	inputs := make([]textinput.Model, fieldCount)

	inputs[nameField] = textinput.New()
	inputs[nameField].Placeholder = "Support Bot"
	inputs[nameField].Focus()
	inputs[nameField].CharLimit = 50
	inputs[nameField].Width = 30
	inputs[nameField].Prompt = "Name: "

	inputs[projectField] = textinput.New()
	inputs[projectField].Placeholder = "8f14e45f-ceea-467f-a34e-95678bd3a1c1"
	inputs[projectField].CharLimit = 40
	inputs[projectField].Width = 40
	inputs[projectField].Prompt = "Project: "

	inputs[tagsField] = textinput.New()
	inputs[tagsField].Placeholder = "support, tier-1"
	inputs[tagsField].CharLimit = 100
	inputs[tagsField].Width = 40
	inputs[tagsField].Prompt = "Tags: "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = style.HighlightStyle

	var draft *AgentDraftState
	if mode == ModeCreate {
		draft = NewCreateDraft()
	} else {
		draft = NewEditDraft()
	}

	return &AgentForm{
		cfg:              cfg,
		client:           relay.NewClient(cfg),
		mode:             mode,
		agentID:          agentID,
		draft:            draft,
		inputs:           inputs,
		selectedChannels: []string{},
		fieldErrs:        map[string]string{},
		channelsLoading:  true,
		spin:             sp,
	}
}

// Run drives the form to completion and reports where to navigate next.
func (f *AgentForm) Run() (FormOutcome, error) {
	p := tea.NewProgram(f, tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return OutcomeCancelled, err
	}
	return m.(*AgentForm).outcome, nil
}

func (f *AgentForm) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, f.spin.Tick, f.fetchProjects, f.fetchChannels(false)}
	if f.mode == ModeEdit {
		f.load = loadPending
		cmds = append(cmds, f.fetchAgent)
	}
	return tea.Batch(cmds...)
}

func (f *AgentForm) fetchAgent() tea.Msg {
	agent, err := f.client.GetAgent(context.Background(), f.agentID)
	if err != nil {
		return agentLoadFailedMsg{err: err}
	}
	return agentLoadedMsg{agent: agent}
}

// Directory fetch failures degrade to empty option lists rather than
// blocking the form.
func (f *AgentForm) fetchProjects() tea.Msg {
	projects, err := f.client.Projects(context.Background(), false)
	if err != nil {
		return projectsLoadedMsg(nil)
	}
	return projectsLoadedMsg(projects)
}

func (f *AgentForm) fetchChannels(refresh bool) tea.Cmd {
	return func() tea.Msg {
		channels, err := f.client.Channels(context.Background(), refresh)
		if err != nil {
			return channelsLoadedMsg(nil)
		}
		return channelsLoadedMsg(channels)
	}
}

func (f *AgentForm) submitCmd() tea.Cmd {
	draft := f.draft.Draft
	return func() tea.Msg {
		var err error
		if f.mode == ModeCreate {
			_, err = f.client.CreateAgent(context.Background(), draft)
		} else {
			_, err = f.client.UpdateAgent(context.Background(), f.agentID, draft)
		}
		if err != nil {
			return submitFailedMsg{err: err}
		}
		return submitDoneMsg{}
	}
}

func (f *AgentForm) deleteCmd() tea.Cmd {
	return func() tea.Msg {
		if err := f.client.DeleteAgent(context.Background(), f.agentID); err != nil {
			return deleteFailedMsg{err: err}
		}
		return deleteDoneMsg{}
	}
}

func (f *AgentForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case agentLoadedMsg:
		if msg.agent == nil {
			f.load = loadNotFound
			return f, nil
		}
		f.load = loadFound
		if f.draft.SeedFrom(msg.agent) {
			f.inputs[nameField].SetValue(msg.agent.Name)
			f.inputs[projectField].SetValue(msg.agent.ProjectUUID)
			f.inputs[tagsField].SetValue(strings.Join(msg.agent.Tags, ", "))
			f.selectedChannels = f.draft.ChannelIDs()
		}
		return f, nil

	case agentLoadFailedMsg:
		f.loadErr = msg.err
		return f, nil

	case projectsLoadedMsg:
		f.projects = msg
		return f, nil

	case channelsLoadedMsg:
		f.channels = msg
		f.channelsLoading = false
		return f, nil

	case submitDoneMsg:
		f.outcome = OutcomeNavigateList
		return f, tea.Quit

	case submitFailedMsg:
		// Draft stays untouched so the operator can retry.
		f.submitting = false
		f.notice = fmt.Sprintf("submit failed: %v", msg.err)
		return f, nil

	case deleteDoneMsg:
		f.outcome = OutcomeNavigateList
		return f, tea.Quit

	case deleteFailedMsg:
		f.deleting = false
		f.notice = fmt.Sprintf("delete failed: %v", msg.err)
		return f, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		f.spin, cmd = f.spin.Update(msg)
		return f, cmd

	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.height = msg.Height
		return f, nil

	case tea.KeyMsg:
		if f.load == loadNotFound {
			switch msg.String() {
			case "enter", "esc", "q":
				f.outcome = OutcomeNavigateList
				return f, tea.Quit
			case "ctrl+c":
				return f, tea.Quit
			}
			return f, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return f, tea.Quit

		case "tab":
			if f.page == DetailsPage {
				f.focus = (f.focus + 1) % len(f.inputs)
			}

		case "shift+tab":
			if f.page == DetailsPage {
				f.focus--
				if f.focus < 0 {
					f.focus = len(f.inputs) - 1
				}
			}

		case "enter":
			switch f.page {
			case DetailsPage:
				if f.focus == len(f.inputs)-1 {
					f.page = ChannelsPage
				} else {
					f.focus++
				}
			case ChannelsPage:
				f.toggleChannel()
			case ConfirmPage:
				cmds = append(cmds, f.triggerSubmit()...)
			}

		case " ":
			if f.page == ChannelsPage {
				f.toggleChannel()
			}

		case "up", "k":
			if f.page == ChannelsPage && f.channelCursor > 0 {
				f.channelCursor--
			}

		case "down", "j":
			if f.page == ChannelsPage && f.channelCursor < len(f.channels)-1 {
				f.channelCursor++
			}

		case "r":
			if f.load == loadPending && f.loadErr != nil {
				// A failed entity fetch blocks seeding, so retrying it
				// takes precedence over a channel refresh.
				f.loadErr = nil
				cmds = append(cmds, f.fetchAgent, f.spin.Tick)
			} else if f.page == ChannelsPage {
				f.channelsLoading = true
				cmds = append(cmds, f.fetchChannels(true), f.spin.Tick)
			}

		case "d":
			if f.page == ConfirmPage {
				cmds = append(cmds, f.triggerDelete()...)
			}

		case "right", "l":
			switch f.page {
			case DetailsPage:
				f.page = ChannelsPage
			case ChannelsPage:
				f.page = ConfirmPage
			}

		case "left", "h":
			switch f.page {
			case ChannelsPage:
				f.page = DetailsPage
			case ConfirmPage:
				f.page = ChannelsPage
			}
		}
	}

	if f.page == DetailsPage && f.load != loadNotFound {
		for i := range f.inputs {
			if i == f.focus {
				cmds = append(cmds, f.inputs[i].Focus())
			} else {
				f.inputs[i].Blur()
			}
			var cmd tea.Cmd
			f.inputs[i], cmd = f.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		f.syncDraft()
	}

	return f, tea.Batch(cmds...)
}

// triggerSubmit validates and dispatches the draft. A trigger while a
// submit or delete is already in flight is ignored, and an invalid draft
// is rejected locally with no request made.
func (f *AgentForm) triggerSubmit() []tea.Cmd {
	if f.submitting || f.deleting {
		return nil
	}

	f.syncDraft()
	if errs := f.draft.Validate(); len(errs) > 0 {
		f.fieldErrs = errs
		f.page = DetailsPage
		return nil
	}

	f.fieldErrs = map[string]string{}
	f.submitting = true
	return []tea.Cmd{f.submitCmd()}
}

// triggerDelete dispatches the delete. Unavailable in create mode since no
// persisted identifier exists yet; form validity is irrelevant here.
func (f *AgentForm) triggerDelete() []tea.Cmd {
	if f.mode != ModeEdit || f.submitting || f.deleting {
		return nil
	}

	f.deleting = true
	return []tea.Cmd{f.deleteCmd()}
}

// syncDraft mirrors the text inputs into the draft on every update, so the
// title and avatar track the name as it is typed.
func (f *AgentForm) syncDraft() {
	f.draft.Draft.Name = f.inputs[nameField].Value()
	f.draft.Draft.ProjectUUID = strings.TrimSpace(f.inputs[projectField].Value())
	f.draft.Draft.Tags = parseTags(f.inputs[tagsField].Value())
}

// toggleChannel flips the channel under the cursor in or out of the
// selection and rebuilds the draft's integrations from the new selection.
func (f *AgentForm) toggleChannel() {
	if f.channelCursor >= len(f.channels) {
		return
	}
	id := f.channels[f.channelCursor].ID

	removed := false
	kept := f.selectedChannels[:0]
	for _, sel := range f.selectedChannels {
		if sel == id {
			removed = true
			continue
		}
		kept = append(kept, sel)
	}
	f.selectedChannels = kept
	if !removed {
		f.selectedChannels = append(f.selectedChannels, id)
	}

	f.draft.SetChannelIDs(f.selectedChannels)
}

// parseTags splits a comma separated tag line. An empty line means tags
// are explicitly absent, not an empty list.
func parseTags(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// avatarLabel derives the initials badge from the agent name.
func avatarLabel(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "?"
	}
	var b strings.Builder
	for i, w := range fields {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

func (f *AgentForm) View() string {
	if f.load == loadNotFound {
		return f.notFoundView()
	}

	var s strings.Builder

	// The title and avatar mirror the draft name on every keystroke,
	// whatever the validation state.
	name := f.draft.Draft.Name
	title := "New Agent"
	if f.mode == ModeEdit {
		title = "Edit Agent"
	}
	if name != "" {
		title = fmt.Sprintf("%s: %s", title, name)
	}
	s.WriteString(style.AvatarStyle.Render(avatarLabel(name)) + " " + style.TitleStyle.Render(title) + "\n\n")

	if f.mode == ModeEdit && f.load == loadPending {
		if f.loadErr != nil {
			s.WriteString(style.ErrorStyle.Render(fmt.Sprintf("failed to load agent: %v", f.loadErr)) + " (press r to retry)\n\n")
		} else {
			s.WriteString(f.spin.View() + " loading agent...\n\n")
		}
	}

	pages := []string{"Details", "Channels", "Confirm"}
	nav := "Pages: "
	for i, page := range pages {
		if int(f.page) == i {
			nav += style.HighlightStyle.Render("["+page+"] ")
		} else {
			nav += page + " "
		}
	}
	s.WriteString(nav + "\n\n")

	switch f.page {
	case DetailsPage:
		s.WriteString(f.detailsView())
	case ChannelsPage:
		s.WriteString(f.channelsView())
	case ConfirmPage:
		s.WriteString(f.confirmView())
	}

	if f.notice != "" {
		s.WriteString("\n" + style.WarningStyle.Render(f.notice) + "\n")
	}

	s.WriteString("\n" + style.DimStyle.Render("←/→ pages · esc to cancel") + "\n")
	return s.String()
}

func (f *AgentForm) detailsView() string {
	var s strings.Builder
	s.WriteString(style.SubtitleStyle.Render("Agent Details") + "\n\n")

	fieldKeys := []string{"name", "project", "tags"}
	for i := range f.inputs {
		s.WriteString(f.inputs[i].View() + "\n")
		if msg, ok := f.fieldErrs[fieldKeys[i]]; ok {
			s.WriteString(style.FieldErrorStyle.Render("  "+msg) + "\n")
		}
	}
	if msg, ok := f.fieldErrs["integrations"]; ok {
		s.WriteString(style.FieldErrorStyle.Render("  integrations: "+msg) + "\n")
	}

	s.WriteString("\nProjects:\n")
	if len(f.projects) == 0 {
		s.WriteString(style.DimStyle.Render("  (none loaded)") + "\n")
	}
	for _, opt := range ProjectOptions(f.projects) {
		s.WriteString(fmt.Sprintf("  • %s  %s\n", opt.Label, style.DimStyle.Render(opt.Value)))
	}

	s.WriteString("\nTab to move between fields, Enter on the last field to continue\n")
	return s.String()
}

func (f *AgentForm) channelsView() string {
	var s strings.Builder
	s.WriteString(style.SubtitleStyle.Render("Notification Channels") + "\n\n")

	if f.channelsLoading {
		s.WriteString(f.spin.View() + " loading channels...\n")
	} else if len(f.channels) == 0 {
		s.WriteString(style.DimStyle.Render("  no channels available") + "\n")
	}

	selected := make(map[string]bool, len(f.selectedChannels))
	for _, id := range f.selectedChannels {
		selected[id] = true
	}

	for i, opt := range ChannelOptions(f.channels) {
		cursor := "  "
		if i == f.channelCursor {
			cursor = style.HighlightStyle.Render("> ")
		}
		mark := "[ ]"
		if selected[opt.Value] {
			mark = style.SuccessStyle.Render("[✓]")
		}
		s.WriteString(fmt.Sprintf("%s%s #%s  %s\n", cursor, mark, opt.Label, style.DimStyle.Render(opt.Value)))
	}

	s.WriteString(fmt.Sprintf("\n%d selected · space/enter to toggle · r to refresh\n", len(f.selectedChannels)))
	return s.String()
}

func (f *AgentForm) confirmView() string {
	var s strings.Builder
	s.WriteString(style.SubtitleStyle.Render("Confirm") + "\n\n")

	d := f.draft.Draft
	s.WriteString(fmt.Sprintf("Name:     %s\n", d.Name))
	s.WriteString(fmt.Sprintf("Project:  %s\n", d.ProjectUUID))
	if d.Tags == nil {
		s.WriteString("Tags:     (absent)\n")
	} else {
		s.WriteString(fmt.Sprintf("Tags:     %s\n", strings.Join(d.Tags, ", ")))
	}
	s.WriteString(fmt.Sprintf("Channels: %d\n\n", len(d.Integrations)))
	for _, in := range d.Integrations {
		s.WriteString(fmt.Sprintf("  • %s %s\n", in.Type, in.ChannelID))
	}

	if f.submitting {
		s.WriteString("\n" + f.spin.View() + " saving...\n")
	} else if f.deleting {
		s.WriteString("\n" + f.spin.View() + " deleting...\n")
	} else {
		verb := "create"
		if f.mode == ModeEdit {
			verb = "save"
		}
		s.WriteString(fmt.Sprintf("\nEnter to %s", verb))
		if f.mode == ModeEdit {
			s.WriteString(" · d to delete")
		}
		s.WriteString("\n")
	}

	return s.String()
}

func (f *AgentForm) notFoundView() string {
	var s strings.Builder
	s.WriteString(style.TitleStyle.Render("Agent not found") + "\n\n")
	s.WriteString(fmt.Sprintf("No agent exists with ID %s.\n", style.HighlightStyle.Render(f.agentID)))
	s.WriteString("It may have been deleted, or the identifier may be wrong.\n\n")
	s.WriteString(style.DimStyle.Render("Press Enter to return to the agent list") + "\n")
	return s.String()
}
