// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements stateful controls that turn gestures
// into application commands. Widgets contain persistent state and
// are polled by the application's own frame loop.
package widget
