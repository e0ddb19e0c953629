// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "github.com/samber/mo"

// Future is a single result that becomes available at some frame.
// It is resolved at most once and is polled rather than waited on.
type Future[T any] struct {
	value mo.Option[T]
}

// Resolve stores v unless f is already resolved. It reports
// whether v was stored.
func (f *Future[T]) Resolve(v T) bool {
	if f.value.IsPresent() {
		return false
	}
	f.value = mo.Some(v)
	return true
}

// Resolved reports whether f holds its result.
func (f *Future[T]) Resolved() bool {
	return f.value.IsPresent()
}

// Poll returns the result, or None if f is not yet resolved.
func (f *Future[T]) Poll() mo.Option[T] {
	return f.value
}
