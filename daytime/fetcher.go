package daytime

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Fetcher turns a Provider's response into a UTC time.
type Fetcher struct {
	Provider Provider
}

// NewFetcher returns a Fetcher reading from p.
func NewFetcher(p Provider) *Fetcher {
	return &Fetcher{Provider: p}
}

// FetchUTCNow asks the provider for a response and parses it.
// Failures are reported as *ConnectionError or *ParseError, never collapsed
// into a zero time.
func (f *Fetcher) FetchUTCNow(ctx context.Context) (time.Time, error) {
	resp, err := f.Provider.DaytimeString(ctx)
	if err != nil {
		return time.Time{}, err
	}
	t, err := Parse(resp)
	if err != nil {
		return time.Time{}, err
	}
	log.Debugf("daytime server says %s", t.Format(time.RFC3339))
	return t, nil
}
