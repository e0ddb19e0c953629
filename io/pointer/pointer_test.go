// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
)

func TestTypeString(t *testing.T) {
	for _, tc := range []struct {
		typ Kind
		res string
	}{
		{Cancel, "Cancel"},
		{Press, "Press"},
		{Release, "Release"},
		{Move, "Move"},
		{Press | Release, "Press|Release"},
		{Press | Release | Move, "Press|Release|Move"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.typ.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}

func TestButtonsString(t *testing.T) {
	for _, tc := range []struct {
		b   Buttons
		res string
	}{
		{0, ""},
		{ButtonPrimary, "ButtonPrimary"},
		{ButtonPrimary | ButtonTertiary, "ButtonPrimary|ButtonTertiary"},
	} {
		if want, got := tc.res, tc.b.String(); want != got {
			t.Errorf("got %q; want %q", got, want)
		}
	}
}
