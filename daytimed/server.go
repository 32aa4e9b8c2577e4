// Package daytimed serves the daytime protocol (RFC 867) over TCP with
// per-IP rate limiting and a bound on concurrent responses.
//
// Responses use the NIST line layout so daytime.Parse can read them.
package daytimed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/karasz/cmosclock/daytime"
)

const (
	// DefaultAddr is the standard daytime port on all interfaces.
	DefaultAddr = ":13"
	// DefaultMaxConcurrentResponses is the default limit for in-flight responses
	DefaultMaxConcurrentResponses = 500
	// DefaultMaxRequestsPerIP is the default number of connections per IP per window
	DefaultMaxRequestsPerIP = 100
	// DefaultRateLimitWindow is the default time window for rate limiting
	DefaultRateLimitWindow = 1 * time.Second
	// DefaultWriteTimeout is the default deadline for writing one response
	DefaultWriteTimeout = 1 * time.Second
)

// Config holds the listen address and limits of a Server.
type Config struct {
	Addr                   string
	Tag                    string
	MaxConcurrentResponses int
	MaxRequestsPerIP       int
	RateLimitWindow        time.Duration
	WriteTimeout           time.Duration
}

// Server answers every accepted connection with one daytime line.
type Server struct {
	ln                net.Listener
	config            *Config
	stats             *Stats
	now               func() time.Time
	responseSemaphore chan struct{}
	rateLimitMutex    sync.Mutex
	rateLimitMap      map[string]*ipRateLimit
	ctx               context.Context
	cancel            context.CancelFunc
	wg                sync.WaitGroup
}

type ipRateLimit struct {
	requests int
	window   time.Time
}

// setConfigDefaults initializes Config fields with default values if they are zero
func setConfigDefaults(config *Config) {
	if config.Addr == "" {
		config.Addr = DefaultAddr
	}
	if config.Tag == "" {
		config.Tag = daytime.DefaultTag
	}
	if config.MaxConcurrentResponses <= 0 {
		config.MaxConcurrentResponses = DefaultMaxConcurrentResponses
	}
	if config.MaxRequestsPerIP <= 0 {
		config.MaxRequestsPerIP = DefaultMaxRequestsPerIP
	}
	if config.RateLimitWindow <= 0 {
		config.RateLimitWindow = DefaultRateLimitWindow
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = DefaultWriteTimeout
	}
}

// NewServer binds config.Addr. A nil stats gets unregistered counters.
func NewServer(config *Config, stats *Stats) (*Server, error) {
	setConfigDefaults(config)
	if stats == nil {
		stats = NewStats(nil)
	}

	ln, err := net.Listen("tcp", config.Addr)
	if err != nil {
		if strings.Contains(err.Error(), "permission denied") {
			return nil, fmt.Errorf(
				"permission denied binding to %s - try running as root or use a port >= 1024", config.Addr)
		}
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	server := &Server{
		ln:                ln,
		config:            config,
		stats:             stats,
		now:               time.Now,
		responseSemaphore: make(chan struct{}, config.MaxConcurrentResponses),
		rateLimitMap:      make(map[string]*ipRateLimit),
		ctx:               ctx,
		cancel:            cancel,
	}

	go server.cleanupRateLimit()

	return server, nil
}

// Start accepts connections until Stop is called.
func (s *Server) Start() error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			select {
			case <-s.ctx.Done():
				return nil
			default:
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			return err
		}
		s.processConn(conn)
	}
}

// Stop closes the listener and waits for in-flight responses.
func (s *Server) Stop() error {
	s.cancel()
	err := s.ln.Close()
	s.wg.Wait()
	return err
}

// Addr returns the server's listening address
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// checkRateLimit checks if an IP is within rate limits
func (s *Server) checkRateLimit(ip string) bool {
	now := time.Now()

	s.rateLimitMutex.Lock()
	defer s.rateLimitMutex.Unlock()

	limit, exists := s.rateLimitMap[ip]
	if !exists {
		s.rateLimitMap[ip] = &ipRateLimit{requests: 1, window: now}
		return true
	}

	if now.Sub(limit.window) > s.config.RateLimitWindow {
		limit.requests = 1
		limit.window = now
		return true
	}

	if limit.requests >= s.config.MaxRequestsPerIP {
		return false
	}

	limit.requests++
	return true
}

// cleanupExpiredEntries removes old rate limit entries
func (s *Server) cleanupExpiredEntries() {
	s.rateLimitMutex.Lock()
	defer s.rateLimitMutex.Unlock()

	now := time.Now()
	for ip, limit := range s.rateLimitMap {
		if now.Sub(limit.window) > s.config.RateLimitWindow*2 {
			delete(s.rateLimitMap, ip)
		}
	}
}

// cleanupRateLimit periodically cleans up old rate limit entries
func (s *Server) cleanupRateLimit() {
	ticker := time.NewTicker(s.config.RateLimitWindow * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanupExpiredEntries()
		case <-s.ctx.Done():
			return
		}
	}
}

func remoteIP(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.IP.String()
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}

// processConn applies the rate limit and hands the connection to a response
// goroutine if a slot is free. Rejected connections are closed unanswered.
func (s *Server) processConn(conn net.Conn) {
	ip := remoteIP(conn.RemoteAddr())
	if !s.checkRateLimit(ip) {
		s.stats.RateLimited.Inc()
		log.Debugf("rate limited %s", ip)
		_ = conn.Close()
		return
	}

	select {
	case s.responseSemaphore <- struct{}{}:
		s.wg.Add(1)
		go s.handleConn(conn)
	default:
		s.stats.Busy.Inc()
		_ = conn.Close()
	}
}

// handleConn writes one daytime line and closes the connection.
func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer func() { <-s.responseSemaphore }()
	defer func() { _ = conn.Close() }()

	if err := conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout)); err != nil {
		s.stats.WriteErrors.Inc()
		return
	}
	line := daytime.FormatLine(s.now(), s.config.Tag)
	if _, err := conn.Write([]byte(line)); err != nil {
		s.stats.WriteErrors.Inc()
		log.Debugf("writing to %s: %v", conn.RemoteAddr(), err)
		return
	}
	s.stats.Served.Inc()
}
