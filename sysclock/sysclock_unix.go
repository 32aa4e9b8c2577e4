//go:build linux || darwin || freebsd || openbsd || netbsd || dragonfly

package sysclock

import (
	"golang.org/x/sys/unix"
)

// IsElevated reports whether the process runs with an effective uid of root.
func IsElevated() (bool, error) {
	return unix.Geteuid() == 0, nil
}

// setSystemTime sets the clock with settimeofday, microsecond precision.
func setSystemTime(r Record) error {
	tv := unix.NsecToTimeval(r.Time().UnixNano())
	return unix.Settimeofday(&tv)
}
