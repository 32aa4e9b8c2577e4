package daytimed

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Stats counts what the server did with each accepted connection.
type Stats struct {
	Served      prometheus.Counter
	RateLimited prometheus.Counter
	Busy        prometheus.Counter
	WriteErrors prometheus.Counter
}

func newCounter(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "daytimed",
		Name:      name,
		Help:      help,
	})
}

// NewStats creates the counters and registers them with reg when it is not nil.
func NewStats(reg prometheus.Registerer) *Stats {
	s := &Stats{
		Served:      newCounter("served_total", "Connections answered with a daytime line."),
		RateLimited: newCounter("rate_limited_total", "Connections closed by the per-IP rate limit."),
		Busy:        newCounter("busy_total", "Connections closed because all response slots were taken."),
		WriteErrors: newCounter("write_errors_total", "Connections where writing the response failed."),
	}
	if reg != nil {
		reg.MustRegister(s.Served, s.RateLimited, s.Busy, s.WriteErrors)
	}
	return s
}
