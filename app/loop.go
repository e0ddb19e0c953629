// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"time"

	"golang.org/x/exp/slices"
)

// scheduler runs frame steps in subscription order.
type scheduler struct {
	steps []*step
	// next is the list of functions to run once at the
	// next frame.
	next []func(now time.Duration)
}

type step struct {
	run      func(now time.Duration)
	detached bool
}

func (s *scheduler) subscribe(f func(now time.Duration)) func() {
	st := &step{run: f}
	s.steps = append(s.steps, st)
	return func() {
		if st.detached {
			return
		}
		st.detached = true
		if i := slices.Index(s.steps, st); i != -1 {
			s.steps = slices.Delete(s.steps, i, i+1)
		}
	}
}

func (s *scheduler) frame(now time.Duration) {
	// Steps subscribed or scheduled during this frame wait for
	// the next one.
	steps := slices.Clone(s.steps)
	next := s.next
	s.next = nil
	for _, st := range steps {
		if !st.detached {
			st.run(now)
		}
	}
	for _, f := range next {
		f(now)
	}
}
