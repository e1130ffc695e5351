// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/basecalc/internal/ui/styles"
)

// fakeClock is a settable time source.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager() (*ToastManager, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := NewToastManager()
	m.SetClock(clock.now)
	return m, clock
}

func TestToastManager_AddAssignsIDsAndDurations(t *testing.T) {
	m, _ := newTestManager()

	errID := m.AddError("invalid number")
	okID := m.AddSuccess("converted")
	if errID == okID {
		t.Fatalf("toast IDs should be unique, both %d", errID)
	}

	toasts := m.Toasts()
	if len(toasts) != 2 {
		t.Fatalf("len(Toasts()) = %d, want 2", len(toasts))
	}
	if toasts[0].ID != okID {
		t.Errorf("newest toast should come first, got ID %d", toasts[0].ID)
	}
	if toasts[1].Duration != ErrorToastDuration {
		t.Errorf("error toast duration = %v, want %v", toasts[1].Duration, ErrorToastDuration)
	}
	if toasts[0].Duration != DefaultToastDuration {
		t.Errorf("success toast duration = %v, want %v", toasts[0].Duration, DefaultToastDuration)
	}
}

func TestToastManager_MaxToasts(t *testing.T) {
	m, _ := newTestManager()

	for i := 0; i < 10; i++ {
		m.Add(ToastKindStatus, "status")
	}
	if got := len(m.Toasts()); got != 3 {
		t.Errorf("len(Toasts()) = %d, want 3", got)
	}
}

func TestToastManager_TickExpires(t *testing.T) {
	m, clock := newTestManager()

	m.AddSuccess("done")
	m.AddError("bad")

	clock.advance(DefaultToastDuration)
	if !m.Tick() {
		t.Fatal("error toast should still be visible")
	}
	toasts := m.Toasts()
	if len(toasts) != 1 || toasts[0].Kind != ToastKindError {
		t.Fatalf("after %v only the error toast should remain, got %+v", DefaultToastDuration, toasts)
	}

	clock.advance(ErrorToastDuration)
	if m.Tick() {
		t.Error("Tick() should report no remaining toasts")
	}
	if m.HasToasts() {
		t.Error("HasToasts() should be false")
	}
}

func TestToastManager_DismissAndClear(t *testing.T) {
	m, _ := newTestManager()

	id := m.AddWarning("careful")
	m.Add(ToastKindStatus, "hello")
	m.Dismiss(id)

	for _, toast := range m.Toasts() {
		if toast.ID == id {
			t.Errorf("toast %d should have been dismissed", id)
		}
	}

	m.Dismiss(9999) // unknown IDs are ignored
	if len(m.Toasts()) != 1 {
		t.Errorf("len(Toasts()) = %d, want 1", len(m.Toasts()))
	}

	m.Clear()
	if m.HasToasts() {
		t.Error("Clear() should remove every toast")
	}
}

func TestRenderToast_IncludesIndicatorAndMessage(t *testing.T) {
	theme := styles.NewTheme(styles.ModeDark)

	tests := []struct {
		kind ToastKind
		icon string
	}{
		{ToastKindError, styles.StatusIndicators.Error},
		{ToastKindWarning, styles.StatusIndicators.Warning},
		{ToastKindSuccess, styles.StatusIndicators.Success},
		{ToastKindStatus, styles.StatusIndicators.Info},
	}

	for _, tt := range tests {
		out := RenderToast(theme, Toast{Kind: tt.kind, Message: "invalid number"}, 80)
		if !strings.Contains(out, tt.icon) {
			t.Errorf("kind %d: output missing indicator %q", tt.kind, tt.icon)
		}
		if !strings.Contains(out, "invalid") {
			t.Errorf("kind %d: output missing message", tt.kind)
		}
	}
}

func TestRenderToastStack(t *testing.T) {
	theme := styles.NewTheme(styles.ModeDark)

	if got := RenderToastStack(theme, nil, 80); got != "" {
		t.Errorf("empty stack should render empty, got %q", got)
	}

	out := RenderToastStack(theme, []Toast{
		{Kind: ToastKindSuccess, Message: "newest"},
		{Kind: ToastKindError, Message: "oldest"},
	}, 80)
	if strings.Index(out, "oldest") > strings.Index(out, "newest") {
		t.Error("newest toast should be rendered last")
	}
}

func TestWrapToastText(t *testing.T) {
	got := wrapToastText("invalid numeral for binary: '2' at position 2", 20)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 20 && !strings.Contains(line, " ") {
			continue // single long words are kept whole
		}
		if len(line) > 20 {
			t.Errorf("line %q exceeds 20 columns", line)
		}
	}
	if wrapToastText("", 20) != "" {
		t.Error("empty text should stay empty")
	}
}
