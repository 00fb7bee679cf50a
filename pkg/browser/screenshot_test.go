package browser

import (
	"testing"

	"go.uber.org/zap"
)

func TestCaptureNilPage(t *testing.T) {
	capturer := NewCapturer(zap.NewNop())

	// A session torn down mid-request can leave the dispatcher without a
	// usable page; capture must degrade to empty, never panic.
	if got := capturer.Capture(nil); got != "" {
		t.Errorf("Capture(nil) = %q, want empty string", got)
	}
}
