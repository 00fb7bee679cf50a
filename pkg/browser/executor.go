package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Settle pauses after interactions that can trigger page reactions
const (
	clickSettleMs  = 1000.0
	scrollSettleMs = 500.0
)

// Executor performs one action against a page and produces a
// human-readable observation of what happened.
//
// For click and type_text the selector is resolved in two tiers: first as
// a structural (CSS) selector, then as visible text or an associated label.
// Callers cannot always know which addressing mode fits a target, so the
// cheap structural path is tried first and the semantic lookup is the
// fallback. Both attempts are independently time-bounded.
type Executor struct {
	log *zap.Logger
}

// NewExecutor creates an action executor.
func NewExecutor(log *zap.Logger) *Executor {
	return &Executor{log: log}
}

// Execute runs the requested action against page. The returned string is
// the observation; on error the caller is expected to fold the message
// into a failure observation rather than abort the request.
func (e *Executor) Execute(page playwright.Page, req ActionRequest) (string, error) {
	switch req.Kind {
	case ActionNavigate:
		return e.navigate(page, req.Params)
	case ActionClick:
		return e.click(page, req.Params)
	case ActionTypeText:
		return e.typeText(page, req.Params)
	case ActionScroll:
		return e.scroll(page, req.Params)
	case ActionWait:
		return e.wait(page, req.Params)
	case ActionGetPageContent:
		return e.pageContent(page)
	default:
		return "", fmt.Errorf("unknown action: %s", req.Kind)
	}
}

// navigate goes to the requested URL and waits for DOM content loaded.
func (e *Executor) navigate(page playwright.Page, p ActionParams) (string, error) {
	if p.URL == "" {
		return "", fmt.Errorf("url is required for navigate")
	}

	_, err := page.Goto(p.URL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(NavigationTimeout),
	})
	if err != nil {
		return "", fmt.Errorf("navigation to %s failed: %w", p.URL, err)
	}

	title, err := page.Title()
	if err != nil {
		title = "unknown"
	}
	return fmt.Sprintf("Navigated to %s. Page title: %s", p.URL, title), nil
}

// click resolves the selector structurally first, then as visible text.
func (e *Executor) click(page playwright.Page, p ActionParams) (string, error) {
	if p.Selector == "" {
		return "", fmt.Errorf("selector is required for click")
	}

	structErr := page.Locator(p.Selector).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(SelectorTimeout),
	})
	if structErr == nil {
		page.WaitForTimeout(clickSettleMs)
		return fmt.Sprintf("Clicked element matching selector %q", p.Selector), nil
	}

	// GetByText matches substrings case-insensitively, so the same input
	// doubles as a description of the target.
	e.log.Debug("structural selector failed, trying visible text",
		zap.String("selector", p.Selector))
	textErr := page.GetByText(p.Selector).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(SelectorTimeout),
	})
	if textErr != nil {
		return "", fmt.Errorf("could not click %q as selector (%v) or visible text (%v)",
			p.Selector, structErr, textErr)
	}

	page.WaitForTimeout(clickSettleMs)
	return fmt.Sprintf("Clicked element with visible text matching %q", p.Selector), nil
}

// typeText fills the target structurally first, then by label text.
func (e *Executor) typeText(page playwright.Page, p ActionParams) (string, error) {
	if p.Selector == "" {
		return "", fmt.Errorf("selector is required for type_text")
	}

	structErr := page.Locator(p.Selector).First().Fill(p.Text, playwright.LocatorFillOptions{
		Timeout: playwright.Float(SelectorTimeout),
	})
	if structErr == nil {
		return fmt.Sprintf("Typed %d characters into element matching selector %q",
			len(p.Text), p.Selector), nil
	}

	e.log.Debug("structural selector failed, trying label text",
		zap.String("selector", p.Selector))
	labelErr := page.GetByLabel(p.Selector).First().Fill(p.Text, playwright.LocatorFillOptions{
		Timeout: playwright.Float(SelectorTimeout),
	})
	if labelErr != nil {
		return "", fmt.Errorf("could not fill %q as selector (%v) or label (%v)",
			p.Selector, structErr, labelErr)
	}

	return fmt.Sprintf("Typed %d characters into input labeled %q", len(p.Text), p.Selector), nil
}

// scroll dispatches a vertical wheel input and lets the page settle.
func (e *Executor) scroll(page playwright.Page, p ActionParams) (string, error) {
	amount := scrollAmount(p)
	delta := scrollDelta(p.Direction, amount)

	if err := page.Mouse().Wheel(0, delta); err != nil {
		return "", fmt.Errorf("scroll failed: %w", err)
	}
	page.WaitForTimeout(scrollSettleMs)

	direction := "down"
	if delta < 0 {
		direction = "up"
	}
	return fmt.Sprintf("Scrolled %s %.0f pixels", direction, amount), nil
}

// wait suspends the request for the given duration.
func (e *Executor) wait(page playwright.Page, p ActionParams) (string, error) {
	ms := waitMillis(p)
	page.WaitForTimeout(ms)
	return fmt.Sprintf("Waited %.0f ms", ms), nil
}

// pageContent extracts the page's visible text, bounded at MaxContentLength.
func (e *Executor) pageContent(page playwright.Page) (string, error) {
	raw, err := page.Content()
	if err != nil {
		return "", fmt.Errorf("failed to read page content: %w", err)
	}

	text := visibleText(raw)
	return truncateText(text, MaxContentLength), nil
}

// scrollAmount returns the requested scroll magnitude or the default.
func scrollAmount(p ActionParams) float64 {
	if p.Amount != nil && *p.Amount > 0 {
		return *p.Amount
	}
	return DefaultScrollAmount
}

// scrollDelta converts a direction and magnitude into a signed vertical
// wheel delta. "up" is negative; anything else scrolls down.
func scrollDelta(direction string, amount float64) float64 {
	if direction == "up" {
		return -amount
	}
	return amount
}

// waitMillis returns the requested wait duration or the default.
func waitMillis(p ActionParams) float64 {
	if p.Ms != nil && *p.Ms > 0 {
		return *p.Ms
	}
	return DefaultWaitMs
}
