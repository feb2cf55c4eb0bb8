//go:build !windows

package vcpatch

import (
	"github.com/kbinani/screenshot"
)

// EnumMonitors lists the active displays. Display 0 is the main one.
func EnumMonitors() ([]Monitor, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil, ErrNoMonitors
	}
	monitors := make([]Monitor, 0, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		monitors = append(monitors, Monitor{
			Width:   b.Dx(),
			Height:  b.Dy(),
			Primary: i == 0,
		})
	}
	return monitors, nil
}
