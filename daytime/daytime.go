// Package daytime reads the current UTC time from a daytime (RFC 867) server.
//
// The server sends one line as soon as a TCP connection is accepted and then
// closes it. For time.nist.gov the line looks like
//
//	\nJJJJJ YY-MM-DD HH:MM:SS TT L H msADV UTC(NIST) OTM\n
//
// where JJJJJ is the Modified Julian Date. The date/time field therefore
// starts after a fixed 7 byte prefix (newline, five digit MJD, space) and is
// 17 bytes long. Servers with a different layout need their own offset.
package daytime

import (
	"fmt"
	"time"
)

const (
	// DefaultAddr is the NIST daytime service.
	DefaultAddr = "time.nist.gov:13"
	// FieldOffset is where the date/time field starts in a NIST response.
	FieldOffset = 7
	// FieldLength is the length of the YY-MM-DD HH:MM:SS field.
	FieldLength = 17
	// Layout parses the date/time field. Two digit years 69-99 map to
	// 1969-1999, 00-68 to 2000-2068.
	Layout = "06-01-02 15:04:05"
)

// fieldShape marks digit positions with 'd'; anything else must match exactly.
const fieldShape = "dd-dd-dd dd:dd:dd"

// Extract returns the date/time field of a daytime response.
func Extract(response string) (string, error) {
	if len(response) < FieldOffset+FieldLength {
		return "", &ParseError{
			Response: response,
			Err:      fmt.Errorf("response is %d bytes, need at least %d", len(response), FieldOffset+FieldLength),
		}
	}

	field := response[FieldOffset : FieldOffset+FieldLength]
	for i := 0; i < len(fieldShape); i++ {
		c := field[i]
		if fieldShape[i] == 'd' {
			if c < '0' || c > '9' {
				return "", &ParseError{Response: response, Err: fmt.Errorf("unexpected %q at position %d of %q", c, i, field)}
			}
			continue
		}
		if c != fieldShape[i] {
			return "", &ParseError{Response: response, Err: fmt.Errorf("unexpected %q at position %d of %q", c, i, field)}
		}
	}
	return field, nil
}

// Parse extracts the date/time field of a daytime response and returns it as
// a UTC instant. The field carries no zone and is taken to be UTC already.
func Parse(response string) (time.Time, error) {
	field, err := Extract(response)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.ParseInLocation(Layout, field, time.UTC)
	if err != nil {
		return time.Time{}, &ParseError{Response: response, Err: err}
	}
	return t, nil
}
