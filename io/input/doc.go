// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input implements tracking of pointer device state for a
window.

The [Router] is used by [gioui.org/x/swipe/app.Window] to collect
pointer events from the platform between frames and to present them
as per-frame device state: the active touches and their phases, the
mouse buttons pressed and released during the frame, the pointer
position and the width of the rendering surface. Gestures query the
Router once per frame rather than consuming events.
*/
package input
