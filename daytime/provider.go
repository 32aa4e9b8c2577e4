package daytime

import (
	"context"
	"io"
	"net"
	"time"

	log "github.com/sirupsen/logrus"
)

// maxResponse bounds how much of a response is read. A NIST line is about
// 50 bytes.
const maxResponse = 1024

// Provider returns the raw response of a daytime server.
type Provider interface {
	DaytimeString(ctx context.Context) (string, error)
}

// TCPProvider reads a daytime response over TCP.
type TCPProvider struct {
	// Addr is host:port, DefaultAddr when empty.
	Addr string
	// Timeout bounds dial and read together. Zero leaves only ctx in charge.
	Timeout time.Duration
}

// DaytimeString connects to the server and reads until it closes the
// connection. The connection is closed before returning on every path.
func (p *TCPProvider) DaytimeString(ctx context.Context) (string, error) {
	addr := p.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return "", &ConnectionError{Addr: addr, Err: err}
	}
	defer func() { _ = conn.Close() }()

	// unblock the read once ctx is done
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetReadDeadline(time.Now())
	})
	defer stop()

	log.Debugf("connected to %s (%s)", addr, conn.RemoteAddr())
	data, err := io.ReadAll(io.LimitReader(conn, maxResponse))
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return "", &ConnectionError{Addr: addr, Err: err}
	}
	log.Debugf("received %d bytes from %s: %q", len(data), addr, data)
	return string(data), nil
}

// StaticProvider always returns the same response, or Err when set.
type StaticProvider struct {
	Response string
	Err      error
}

// DaytimeString returns the canned response.
func (p StaticProvider) DaytimeString(context.Context) (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	return p.Response, nil
}
