// Package sysclock writes the host's system-wide wall clock.
//
// The clock is set from a Record, a fixed-layout structure identical to the
// Windows SYSTEMTIME type. Setting the clock requires elevated privileges and
// is visible to every process on the machine.
package sysclock

import "time"

// Record holds the calendar fields handed to the OS clock-set call.
// The field order and widths match SYSTEMTIME and must not change.
type Record struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

// NewRecord converts t to a Record using its UTC calendar components.
// Every component is truncated to 16 bits without range checks, so a
// negative year or one past 65535 wraps. DayOfWeek and Milliseconds are left
// at zero.
func NewRecord(t time.Time) Record {
	utc := t.UTC()
	return Record{
		Year:   uint16(utc.Year()),
		Month:  uint16(utc.Month()),
		Day:    uint16(utc.Day()),
		Hour:   uint16(utc.Hour()),
		Minute: uint16(utc.Minute()),
		Second: uint16(utc.Second()),
	}
}

// Time rebuilds the UTC instant described by r.
func (r Record) Time() time.Time {
	return time.Date(int(r.Year), time.Month(r.Month), int(r.Day),
		int(r.Hour), int(r.Minute), int(r.Second), 0, time.UTC)
}
