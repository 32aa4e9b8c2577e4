//go:build !(linux || darwin || freebsd || openbsd || netbsd || dragonfly || windows)

package sysclock

// IsElevated always fails where no clock-set call is available.
func IsElevated() (bool, error) {
	return false, ErrUnsupported
}

func setSystemTime(Record) error {
	return ErrUnsupported
}
