package tui

// CreateSentinel is the route identifier that selects create mode.
const CreateSentinel = "new"

// FormMode tells the agent form whether it creates a new record or edits
// an existing one.
type FormMode int

const (
	ModeCreate FormMode = iota
	ModeEdit
)

// ResolveFormMode derives the operating mode from a route identifier.
// Anything other than the create sentinel resolves to edit mode, malformed
// identifiers included: a bad ID surfaces downstream as not-found, never
// as a resolver error.
func ResolveFormMode(routeID string) (FormMode, string) {
	if routeID == CreateSentinel {
		return ModeCreate, ""
	}
	return ModeEdit, routeID
}
