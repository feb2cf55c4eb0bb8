package vcpatch

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const MONITORINFOF_PRIMARY = 0x1

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfo      = user32.NewProc("GetMonitorInfoW")

	// filled by monitorEnumProc, only valid during EnumMonitors
	g_monitors      []Monitor
	g_monitorErr    error
	monitorEnumProc = windows.NewCallback(func(hMonitor, hdc uintptr, rect *windows.Rect, lParam uintptr) uintptr {
		mi, err := getMonitorInfo(hMonitor)
		if err != nil {
			g_monitorErr = err
			return 0
		}
		g_monitors = append(g_monitors, Monitor{
			Width:   int(mi.Monitor.Right - mi.Monitor.Left),
			Height:  int(mi.Monitor.Bottom - mi.Monitor.Top),
			Primary: mi.Flags&MONITORINFOF_PRIMARY != 0,
		})
		return 1
	})
)

type MONITORINFO struct {
	Size    uint32
	Monitor windows.Rect
	Work    windows.Rect
	Flags   uint32
}

func getMonitorInfo(hMonitor uintptr) (MONITORINFO, error) {
	var mi MONITORINFO
	mi.Size = uint32(unsafe.Sizeof(mi))
	ret, _, err := procGetMonitorInfo.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return mi, fmt.Errorf("GetMonitorInfoW: %w", err)
	}
	return mi, nil
}

// EnumMonitors lists the display monitors in EnumDisplayMonitors order.
func EnumMonitors() ([]Monitor, error) {
	g_monitors = nil
	g_monitorErr = nil

	ret, _, err := procEnumDisplayMonitors.Call(0, 0, monitorEnumProc, 0)
	if g_monitorErr != nil {
		return nil, g_monitorErr
	}
	if ret == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors: %w", err)
	}
	if len(g_monitors) == 0 {
		return nil, ErrNoMonitors
	}
	return g_monitors, nil
}
