// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the reusable pieces of the basecalc form.

Header (header.go) draws the logo and the brand box with the current
conversion direction underneath.

ToastManager (toast.go) holds short-lived notifications. Invalid or empty
numbers are reported through an error toast rather than a modal dialog, so
the user can keep editing. Toasts expire on their own; the owning model
drives expiry by scheduling ToastTickCmd while HasToasts is true:

	case components.ToastTickMsg:
		if m.toasts.Tick() {
			return m, components.ToastTickCmd()
		}
		return m, nil

All rendering takes a *styles.Theme so a config reload can restyle
everything at once.
*/
package components
