package content

import "time"

// Placeholder replaces the payload when the remote document fetch returns a
// non-success status. A missing document is degraded content, not an error:
// the load still completes as ready.
const Placeholder = "Content not available"

// ErrorMessage is the fixed user-facing message for hard fetch failures
// (transport errors, cancellation). The underlying error is only logged.
const ErrorMessage = "Failed to load content. Please try again later."

// Bundle is the result of one module fetch. It is created fresh on every
// load and never cached; ModuleID records which identifier the fetch was
// issued for so consumers can discard results that no longer match.
type Bundle struct {
	ModuleID     string    `json:"module_id"`
	DisplayName  string    `json:"display_name"`
	Markdown     string    `json:"markdown"`
	CompanionURL string    `json:"companion_url"`
	SourceURL    string    `json:"source_url"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// State is the outcome of a load: a ready bundle (possibly carrying the
// placeholder payload) or a terminal error with a user-facing message.
type State struct {
	Bundle Bundle
	Err    string
}

// Ready reports whether the load produced a usable bundle.
func (s State) Ready() bool { return s.Err == "" }
