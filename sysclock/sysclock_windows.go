//go:build windows

package sysclock

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32          = windows.NewLazySystemDLL("kernel32.dll")
	procSetSystemTime = kernel32.NewProc("SetSystemTime")
)

// IsElevated reports whether the process token is elevated.
func IsElevated() (bool, error) {
	return windows.GetCurrentProcessToken().IsElevated(), nil
}

// setSystemTime passes r to SetSystemTime, which expects UTC.
// On failure the returned error is the thread's last Win32 error.
func setSystemTime(r Record) error {
	r1, _, err := procSetSystemTime.Call(uintptr(unsafe.Pointer(&r)))
	if r1 == 0 {
		return err
	}
	return nil
}
