package browser

import (
	"encoding/base64"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Capturer takes best-effort screenshots of a page. Capture never fails:
// it is invoked after every action, including failed ones, so the caller
// can visually diagnose what the page looked like.
type Capturer struct {
	log *zap.Logger
}

// NewCapturer creates a screenshot capturer.
func NewCapturer(log *zap.Logger) *Capturer {
	return &Capturer{log: log}
}

// Capture returns a base64-encoded low-quality JPEG of the current page
// state, or an empty string when the capture fails for any reason.
func (c *Capturer) Capture(page playwright.Page) string {
	if page == nil {
		return ""
	}

	buf, err := page.Screenshot(playwright.PageScreenshotOptions{
		Type:    playwright.ScreenshotTypeJpeg,
		Quality: playwright.Int(ScreenshotQuality),
	})
	if err != nil {
		c.log.Debug("screenshot failed", zap.Error(err))
		return ""
	}

	return base64.StdEncoding.EncodeToString(buf)
}
