package vcpatch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNoMonitors = errors.New("no monitors found")

// ResolutionSource reports the resolution of the desktop the game will run on.
type ResolutionSource interface {
	DesktopResolution() (Resolution, error)
}

type Monitor struct {
	Width   int
	Height  int
	Primary bool
}

// PickPrimary returns the size of the primary monitor, or of the first one if
// none is flagged primary.
func PickPrimary(monitors []Monitor) (Resolution, error) {
	if len(monitors) == 0 {
		return Resolution{}, ErrNoMonitors
	}
	for _, m := range monitors {
		if m.Primary {
			return Resolution{Width: m.Width, Height: m.Height}, nil
		}
	}
	return Resolution{Width: monitors[0].Width, Height: monitors[0].Height}, nil
}

// Desktop queries the attached displays.
type Desktop struct{}

func (Desktop) DesktopResolution() (Resolution, error) {
	monitors, err := EnumMonitors()
	if err != nil {
		return Resolution{}, err
	}
	for i, m := range monitors {
		Log.WithField("primary", m.Primary).Debugf("monitor %d: %dx%d", i, m.Width, m.Height)
	}
	return PickPrimary(monitors)
}

// FixedResolution is a ResolutionSource that always reports itself.
type FixedResolution Resolution

func (f FixedResolution) DesktopResolution() (Resolution, error) {
	return Resolution(f), nil
}

// ParseResolution parses "WIDTHxHEIGHT", e.g. "5120x1440".
func ParseResolution(s string) (Resolution, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Resolution{}, fmt.Errorf("invalid resolution %q: expected WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid resolution %q: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid resolution %q: %w", s, err)
	}
	if width < 0 || height < 0 {
		return Resolution{}, fmt.Errorf("invalid resolution %q: negative size", s)
	}
	return Resolution{Width: width, Height: height}, nil
}
