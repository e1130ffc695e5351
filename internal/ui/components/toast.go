// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/basecalc/internal/ui/styles"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	// ToastKindStatus is an informational toast
	ToastKindStatus ToastKind = iota
	// ToastKindError is an error toast
	ToastKindError
	// ToastKindWarning is a warning toast
	ToastKindWarning
	// ToastKindSuccess is a success toast
	ToastKindSuccess
)

// DefaultToastDuration is the auto-dismiss duration for status and success toasts.
const DefaultToastDuration = 3 * time.Second

// ErrorToastDuration is the auto-dismiss duration for error toasts.
const ErrorToastDuration = 6 * time.Second

// WarningToastDuration is the auto-dismiss duration for warning toasts.
const WarningToastDuration = 5 * time.Second

// ToastTickInterval is how often ToastTickCmd fires.
const ToastTickInterval = 250 * time.Millisecond

// durationFor returns the default lifetime of a toast kind.
func durationFor(kind ToastKind) time.Duration {
	switch kind {
	case ToastKindError:
		return ErrorToastDuration
	case ToastKindWarning:
		return WarningToastDuration
	default:
		return DefaultToastDuration
	}
}

// Toast is a non-blocking notification shown under the form. It replaces
// modal error dialogs: the user keeps typing while it is visible.
type Toast struct {
	ID        int
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
	Duration  time.Duration
}

// ExpiredAt reports whether the toast has outlived its duration at now.
func (t Toast) ExpiredAt(now time.Time) bool {
	return now.Sub(t.CreatedAt) >= t.Duration
}

// =============================================================================
// TOAST MANAGER
// =============================================================================

// ToastManager keeps the visible toasts, newest first.
type ToastManager struct {
	toasts    []Toast
	nextID    int
	maxToasts int
	now       func() time.Time
	mutex     sync.Mutex
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{
		nextID:    1,
		maxToasts: 3,
		now:       time.Now,
	}
}

// SetClock replaces the time source. Used by tests.
func (m *ToastManager) SetClock(now func() time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.now = now
}

// Add shows a new toast and returns its ID.
func (m *ToastManager) Add(kind ToastKind, message string) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	toast := Toast{
		ID:        m.nextID,
		Message:   message,
		Kind:      kind,
		CreatedAt: m.now(),
		Duration:  durationFor(kind),
	}
	m.nextID++

	m.toasts = append([]Toast{toast}, m.toasts...)
	if len(m.toasts) > m.maxToasts {
		m.toasts = m.toasts[:m.maxToasts]
	}
	return toast.ID
}

// AddError adds an error toast.
func (m *ToastManager) AddError(message string) int {
	return m.Add(ToastKindError, message)
}

// AddWarning adds a warning toast.
func (m *ToastManager) AddWarning(message string) int {
	return m.Add(ToastKindWarning, message)
}

// AddSuccess adds a success toast.
func (m *ToastManager) AddSuccess(message string) int {
	return m.Add(ToastKindSuccess, message)
}

// Dismiss removes a toast by ID.
func (m *ToastManager) Dismiss(id int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i, toast := range m.toasts {
		if toast.ID == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// Tick drops expired toasts and reports whether any remain.
func (m *ToastManager) Tick() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := m.now()
	active := m.toasts[:0]
	for _, toast := range m.toasts {
		if !toast.ExpiredAt(now) {
			active = append(active, toast)
		}
	}
	m.toasts = active
	return len(m.toasts) > 0
}

// Toasts returns a copy of the visible toasts, newest first.
func (m *ToastManager) Toasts() []Toast {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	result := make([]Toast, len(m.toasts))
	copy(result, m.toasts)
	return result
}

// HasToasts returns true if there are any visible toasts.
func (m *ToastManager) HasToasts() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.toasts) > 0
}

// Clear removes all toasts.
func (m *ToastManager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.toasts = nil
}

// =============================================================================
// TOAST MESSAGES
// =============================================================================

// ToastTickMsg is sent periodically while toasts are visible.
type ToastTickMsg struct {
	Time time.Time
}

// ToastTickCmd schedules the next ToastTickMsg.
func ToastTickCmd() tea.Cmd {
	return tea.Tick(ToastTickInterval, func(t time.Time) tea.Msg {
		return ToastTickMsg{Time: t}
	})
}

// =============================================================================
// TOAST RENDERING
// =============================================================================

// RenderToast renders a single toast no wider than width.
func RenderToast(theme *styles.Theme, toast Toast, width int) string {
	maxWidth := 60
	if width > 0 && width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 20 {
		maxWidth = 20
	}

	var box lipgloss.Style
	var icon string
	switch toast.Kind {
	case ToastKindError:
		box, icon = theme.ToastError, styles.StatusIndicators.Error
	case ToastKindWarning:
		box, icon = theme.ToastWarning, styles.StatusIndicators.Warning
	case ToastKindSuccess:
		box, icon = theme.ToastSuccess, styles.StatusIndicators.Success
	default:
		box, icon = theme.ToastInfo, styles.StatusIndicators.Info
	}

	// Border and padding take four columns.
	text := wrapToastText(icon+" "+toast.Message, maxWidth-4)
	return box.Render(text)
}

// RenderToastStack renders toasts stacked vertically, newest at the bottom.
func RenderToastStack(theme *styles.Theme, toasts []Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for i := len(toasts) - 1; i >= 0; i-- {
		rendered = append(rendered, RenderToast(theme, toasts[i], width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// wrapToastText performs simple word wrapping for toast messages.
func wrapToastText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	var currentLine strings.Builder

	for _, word := range words {
		switch {
		case currentLine.Len() == 0:
			currentLine.WriteString(word)
		case currentLine.Len()+1+len(word) <= maxWidth:
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
		default:
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
		}
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n")
}
