package daytime

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// serveOnce accepts one connection, writes resp and closes it.
func serveOnce(t *testing.T, resp string) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		_, _ = conn.Write([]byte(resp))
		_ = conn.Close()
	}()
	return ln.Addr().String()
}

func TestTCPProviderReadsUntilClose(t *testing.T) {
	addr := serveOnce(t, nistResponse)

	p := &TCPProvider{Addr: addr, Timeout: 5 * time.Second}
	got, err := p.DaytimeString(context.Background())
	require.NoError(t, err)
	require.Equal(t, nistResponse, got)
}

func TestTCPProviderConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	p := &TCPProvider{Addr: addr, Timeout: 5 * time.Second}
	_, err = p.DaytimeString(context.Background())

	var cerr *ConnectionError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, addr, cerr.Addr)
}

func TestTCPProviderTimeout(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	// accept and hold the connection open without answering
	held := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			held <- conn
		}
	}()
	t.Cleanup(func() {
		select {
		case conn := <-held:
			_ = conn.Close()
		default:
		}
	})

	p := &TCPProvider{Addr: ln.Addr().String(), Timeout: 100 * time.Millisecond}
	start := time.Now()
	_, err = p.DaytimeString(context.Background())
	require.True(t, time.Since(start) < 5*time.Second)

	var cerr *ConnectionError
	require.ErrorAs(t, err, &cerr)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTCPProviderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &TCPProvider{Addr: "127.0.0.1:13"}
	_, err := p.DaytimeString(ctx)

	var cerr *ConnectionError
	require.ErrorAs(t, err, &cerr)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStaticProvider(t *testing.T) {
	got, err := StaticProvider{Response: "x"}.DaytimeString(context.Background())
	require.NoError(t, err)
	require.Equal(t, "x", got)

	boom := errors.New("boom")
	_, err = StaticProvider{Response: "x", Err: boom}.DaytimeString(context.Background())
	require.ErrorIs(t, err, boom)
}
