// SPDX-License-Identifier: Unlicense OR MIT

/*
Package option adds type-changing combinators to mo.Option.

The methods of mo.Option map a value to the same type only. Map and
Bind convert an Option of one type into an Option of another, such
as a pointer sample into a transition.
*/
package option

import "github.com/samber/mo"

// Map returns Some(f(v)) if o holds v, and None otherwise.
func Map[T, U any](o mo.Option[T], f func(T) U) mo.Option[U] {
	v, ok := o.Get()
	if !ok {
		return mo.None[U]()
	}
	return mo.Some(f(v))
}

// Bind returns f(v) if o holds v, and None otherwise.
func Bind[T, U any](o mo.Option[T], f func(T) mo.Option[U]) mo.Option[U] {
	v, ok := o.Get()
	if !ok {
		return mo.None[U]()
	}
	return f(v)
}
