// Package waves provides access to raw sample series on a wave server
// backend. Two backends are supported: the edge wave server's HTTP endpoint
// and a Postgres sample archive.
package waves

import (
	"context"
	"time"

	"github.com/obsnetwork/geomagws/internal/sncl"
)

// Series is one raw sample stream returned by a backend. Samples are evenly
// spaced starting at Start; nil entries are missing samples.
type Series struct {
	Address sncl.ChannelAddress
	Start   time.Time
	Delta   time.Duration
	Samples []*float64
}

// Empty reports whether the backend returned no data for the channel.
func (s *Series) Empty() bool {
	return s == nil || len(s.Samples) == 0
}

// At returns the sample recorded at t, or nil when no sample exists there.
func (s *Series) At(t time.Time) *float64 {
	if s.Empty() || s.Delta <= 0 {
		return nil
	}
	offset := t.Sub(s.Start)
	if offset < 0 || offset%s.Delta != 0 {
		return nil
	}
	i := int(offset / s.Delta)
	if i >= len(s.Samples) {
		return nil
	}
	return s.Samples[i]
}

// Fetcher retrieves the raw series for one channel over a time window.
//
// A nil series with a nil error means the backend has no such channel; the
// caller substitutes missing markers for the whole window.
type Fetcher interface {
	Fetch(ctx context.Context, start, end time.Time, address sncl.ChannelAddress) (*Series, error)
}
