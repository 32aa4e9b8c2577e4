package daytime

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/karasz/glibtai"
)

// DefaultTag is the source label written by FormatLine when none is given.
const DefaultTag = "UTC(LOCAL)"

// mjdUnixEpoch is the Modified Julian Date of 1970-01-01.
const mjdUnixEpoch = 40587

// Leap second indicator values of the NIST line.
const (
	LeapNone   = 0
	LeapInsert = 1
	LeapDelete = 2
)

// MJD returns the Modified Julian Date of t.
func MJD(t time.Time) int64 {
	days := t.Unix() / 86400
	if t.Unix() < 0 && t.Unix()%86400 != 0 {
		days--
	}
	return mjdUnixEpoch + days
}

// taiOffset returns TAI-UTC in seconds at t.
func taiOffset(t time.Time) int64 {
	label := glibtai.TAIPack(glibtai.TAIfromTime(t))
	return int64(binary.BigEndian.Uint64(label)-glibtai.TAICONST) - t.Unix()
}

// LeapIndicator tells whether a leap second is scheduled at the end of the
// month containing t.
func LeapIndicator(t time.Time) int {
	utc := t.UTC()
	next := time.Date(utc.Year(), utc.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	switch diff := taiOffset(next) - taiOffset(utc); {
	case diff > 0:
		return LeapInsert
	case diff < 0:
		return LeapDelete
	default:
		return LeapNone
	}
}

// FormatLine renders t as a NIST style daytime line, the layout Parse expects.
// DST code, health and advance are always zero.
func FormatLine(t time.Time, tag string) string {
	if tag == "" {
		tag = DefaultTag
	}
	utc := t.UTC()
	return fmt.Sprintf("\n%05d %s 00 %d 0 %5.1f %s *\n",
		MJD(utc), utc.Format(Layout), LeapIndicator(utc), 0.0, tag)
}
