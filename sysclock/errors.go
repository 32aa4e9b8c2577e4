package sysclock

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrPermission is returned when the caller is not elevated.
	ErrPermission = errors.New("administrator privileges required")
	// ErrUnsupported is returned on platforms without a clock-set call.
	ErrUnsupported = errors.New("setting the system clock is not supported on this platform")
)

// OSError reports a failed clock-set call together with the platform error code.
type OSError struct {
	Code uint32
	Err  error
}

func (e *OSError) Error() string {
	return fmt.Sprintf("failed to set system time, error code: %d", e.Code)
}

func (e *OSError) Unwrap() error {
	return e.Err
}

// newOSError extracts the errno (or Win32 last error) carried by err.
func newOSError(err error) *OSError {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &OSError{Code: uint32(errno), Err: err}
	}
	return &OSError{Err: err}
}
