package daytime

import "fmt"

// ConnectionError is returned when the server cannot be reached or the
// response cannot be read.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("daytime %s: %v", e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a response does not contain a valid date/time.
type ParseError struct {
	Response string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed daytime response %q: %v", e.Response, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
