package sysclock

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// SetMessage is the confirmation returned by a successful SetSystemClock.
const SetMessage = "system time was set"

//go:generate mockgen -source=writer.go -destination=writer_mock_test.go -package=sysclock Setter

// Setter issues the OS call that replaces the system clock.
type Setter interface {
	SetSystemTime(r Record) error
}

// SetterFunc adapts a plain function to Setter.
type SetterFunc func(r Record) error

// SetSystemTime calls f(r).
func (f SetterFunc) SetSystemTime(r Record) error {
	return f(r)
}

// Writer sets the system clock after checking the caller's privileges.
type Writer struct {
	// Elevated reports whether the current process may change the clock.
	Elevated func() (bool, error)
	Setter   Setter
}

// New returns a Writer bound to the running platform.
func New() *Writer {
	return &Writer{
		Elevated: IsElevated,
		Setter:   SetterFunc(setSystemTime),
	}
}

// SetSystemClock writes t to the system clock in a single attempt.
// It fails with ErrPermission before touching the clock when the process is
// not elevated, and with *OSError when the OS call itself fails.
func (w *Writer) SetSystemClock(t time.Time) (string, error) {
	elevated, err := w.Elevated()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPermission, err)
	}
	if !elevated {
		return "", ErrPermission
	}

	r := NewRecord(t)
	log.Debugf("setting system clock to %04d-%02d-%02d %02d:%02d:%02d UTC",
		r.Year, r.Month, r.Day, r.Hour, r.Minute, r.Second)
	if err := w.Setter.SetSystemTime(r); err != nil {
		return "", newOSError(err)
	}
	return SetMessage, nil
}
