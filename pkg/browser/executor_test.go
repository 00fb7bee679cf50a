package browser

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestScrollDelta(t *testing.T) {
	tests := []struct {
		name      string
		direction string
		amount    float64
		want      float64
	}{
		{
			name:      "up is negative",
			direction: "up",
			amount:    300,
			want:      -300,
		},
		{
			name:      "down is positive",
			direction: "down",
			amount:    300,
			want:      300,
		},
		{
			name:      "omitted direction scrolls down",
			direction: "",
			amount:    500,
			want:      500,
		},
		{
			name:      "unrecognized direction scrolls down",
			direction: "sideways",
			amount:    120,
			want:      120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scrollDelta(tt.direction, tt.amount); got != tt.want {
				t.Errorf("scrollDelta(%q, %v) = %v, want %v", tt.direction, tt.amount, got, tt.want)
			}
		})
	}
}

func TestScrollAmountDefault(t *testing.T) {
	if got := scrollAmount(ActionParams{}); got != DefaultScrollAmount {
		t.Errorf("scrollAmount() = %v, want %v", got, DefaultScrollAmount)
	}

	amount := 250.0
	if got := scrollAmount(ActionParams{Amount: &amount}); got != 250 {
		t.Errorf("scrollAmount() = %v, want 250", got)
	}

	zero := 0.0
	if got := scrollAmount(ActionParams{Amount: &zero}); got != DefaultScrollAmount {
		t.Errorf("scrollAmount() with zero = %v, want default %v", got, DefaultScrollAmount)
	}
}

func TestWaitMillisDefault(t *testing.T) {
	if got := waitMillis(ActionParams{}); got != DefaultWaitMs {
		t.Errorf("waitMillis() = %v, want %v", got, DefaultWaitMs)
	}

	ms := 2500.0
	if got := waitMillis(ActionParams{Ms: &ms}); got != 2500 {
		t.Errorf("waitMillis() = %v, want 2500", got)
	}
}

func TestKnownAction(t *testing.T) {
	for _, kind := range []ActionKind{
		ActionNavigate, ActionClick, ActionTypeText,
		ActionScroll, ActionWait, ActionGetPageContent,
	} {
		if !KnownAction(kind) {
			t.Errorf("KnownAction(%q) = false, want true", kind)
		}
	}

	for _, kind := range []ActionKind{"", "explode", "Navigate", "click "} {
		if KnownAction(kind) {
			t.Errorf("KnownAction(%q) = true, want false", kind)
		}
	}
}

func TestExecuteRejectsUnknownKind(t *testing.T) {
	executor := NewExecutor(zap.NewNop())

	_, err := executor.Execute(nil, ActionRequest{Kind: "explode"})
	if err == nil {
		t.Fatal("expected error for unknown action kind")
	}
	if !strings.Contains(err.Error(), "unknown action") {
		t.Errorf("error = %q, want mention of unknown action", err)
	}
}

func TestExecuteValidatesParams(t *testing.T) {
	executor := NewExecutor(zap.NewNop())

	tests := []struct {
		name string
		req  ActionRequest
	}{
		{
			name: "navigate without url",
			req:  ActionRequest{Kind: ActionNavigate},
		},
		{
			name: "click without selector",
			req:  ActionRequest{Kind: ActionClick},
		},
		{
			name: "type_text without selector",
			req:  ActionRequest{Kind: ActionTypeText, Params: ActionParams{Text: "hello"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Validation fires before the page is touched, so a nil page
			// is safe here
			if _, err := executor.Execute(nil, tt.req); err == nil {
				t.Error("expected parameter validation error")
			}
		})
	}
}
