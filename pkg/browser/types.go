package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// Session represents a connection to one remotely provisioned browser.
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// Browser is the CDP connection to the remote browser
	Browser playwright.Browser

	// Context is the browsing context adopted at connect time
	Context playwright.BrowserContext

	// Page is the active page all actions operate on
	Page playwright.Page

	// CreatedAt is the timestamp when the session was created
	CreatedAt time.Time
}

// Age returns how long the session has existed relative to now.
func (s *Session) Age(now time.Time) time.Duration {
	return now.Sub(s.CreatedAt)
}

// Credentials identify the caller against the remote browser provisioner.
type Credentials struct {
	APIKey    string `json:"apiKey"`
	ProjectID string `json:"projectId"`
}

// ActionKind enumerates the supported browser actions.
type ActionKind string

const (
	ActionNavigate       ActionKind = "navigate"
	ActionClick          ActionKind = "click"
	ActionTypeText       ActionKind = "type_text"
	ActionScroll         ActionKind = "scroll"
	ActionWait           ActionKind = "wait"
	ActionGetPageContent ActionKind = "get_page_content"
)

// knownActions is the closed set of action kinds the executor accepts.
var knownActions = map[ActionKind]bool{
	ActionNavigate:       true,
	ActionClick:          true,
	ActionTypeText:       true,
	ActionScroll:         true,
	ActionWait:           true,
	ActionGetPageContent: true,
}

// KnownAction reports whether kind is one of the supported actions.
func KnownAction(kind ActionKind) bool {
	return knownActions[kind]
}

// ActionParams is the parameter bag for an action. Which fields are
// required depends on the action kind.
type ActionParams struct {
	// URL to navigate to (navigate)
	URL string `json:"url,omitempty"`

	// Selector is a CSS selector, or visible text / label text when the
	// structural lookup fails (click, type_text)
	Selector string `json:"selector,omitempty"`

	// Text is the value to fill (type_text)
	Text string `json:"text,omitempty"`

	// Amount is the scroll magnitude in pixels (scroll)
	Amount *float64 `json:"amount,omitempty"`

	// Direction is "up" or "down" (scroll); anything but "up" scrolls down
	Direction string `json:"direction,omitempty"`

	// Ms is the wait duration in milliseconds (wait)
	Ms *float64 `json:"ms,omitempty"`
}

// ActionRequest pairs an action kind with its parameters.
type ActionRequest struct {
	Kind   ActionKind   `json:"action"`
	Params ActionParams `json:"params"`
}

// Default values and bounds for session and action handling
const (
	ConnectTimeout      = 30000.0 // 30 seconds in milliseconds
	NavigationTimeout   = 30000.0
	SelectorTimeout     = 5000.0 // primary and fallback lookups each
	DefaultScrollAmount = 500.0
	DefaultWaitMs       = 1000.0
	MaxContentLength    = 4000
	ScreenshotQuality   = 50

	SessionMaxAge = 10 * time.Minute
	SweepInterval = 5 * time.Minute
)
