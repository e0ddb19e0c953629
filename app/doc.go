// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app drives frame synchronous input handling for a window
owned by an external host.

# Windows

A Window is advanced by calling its Frame method once per rendered
frame. Pointer events delivered by the platform between frames are
passed to Queue and become visible to the window's input router at
the next Frame.

Components that need to run every frame Subscribe a step function
and keep the returned detach function. A step that should run only
once, on the frame after the current one, is scheduled with Next.

For example:

	w := app.NewWindow(app.Size(1080, 1920))
	detach := w.Subscribe(func(now time.Duration) {
		// Inspect w.Input().
	})
	defer detach()
	for {
		w.Queue(events...)
		w.Frame(now)
	}

Within a frame, subscribed steps run in subscription order, followed
by the functions scheduled with Next during the previous frame.

# Components

Register attaches a component to a window under a tag. A window
holds at most one component per tag, which lets components such as
gesture listeners enforce a single active instance per window.
*/
package app
