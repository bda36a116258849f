// Package assemble turns a resolved query into per-element sample series
// aligned on a shared time axis.
package assemble

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/obsnetwork/geomagws/internal/query"
	"github.com/obsnetwork/geomagws/internal/sncl"
	"github.com/obsnetwork/geomagws/internal/waves"
)

// unitScale converts backend milli-units into output units.
const unitScale = 1000

// Result is the assembled series for one requested element.
type Result struct {
	Address sncl.ChannelAddress
	Element string
	Series  *waves.Series // raw backend response, nil when the channel is absent
	Values  []*float64    // converted samples aligned with the shared time axis
}

// Data is the assembled response for a whole query. Times and every
// result's Values have identical length. It is built once per request and
// read-only afterward.
type Data struct {
	Times   []time.Time
	Period  int // effective sampling period in seconds
	Results map[string]*Result
}

// Assembler fetches and aligns series for each element of a query.
type Assembler struct {
	fetcher waves.Fetcher
	logger  *logrus.Logger
}

// New creates an Assembler backed by fetcher.
func New(fetcher waves.Fetcher, logger *logrus.Logger) *Assembler {
	return &Assembler{fetcher: fetcher, logger: logger}
}

// TimeAxis generates the shared axis: start, start+period, and so on up to
// the last instant not after end. A window of exactly one instant yields a
// single point. The axis is empty when end precedes start.
func TimeAxis(start, end time.Time, period int) []time.Time {
	if period <= 0 || end.Before(start) {
		return nil
	}
	steps := int(end.Sub(start)/time.Second) / period
	step := time.Duration(period) * time.Second

	times := make([]time.Time, steps+1)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * step)
	}
	return times
}

// Assemble generates the time axis, fetches each requested element's
// series, and aligns and converts the samples.
//
// Duplicate elements are fetched independently; the result map is keyed by
// element name, so a later occurrence overwrites an earlier one. Queries
// that set no sampling period or data type get minute variation data.
func (a *Assembler) Assemble(ctx context.Context, q *query.Query) (*Data, error) {
	period := q.SamplingPeriod
	if period == 0 {
		period = query.PeriodMinute
	}
	dataType := q.Type
	if dataType == "" {
		dataType = "variation"
	}

	times := TimeAxis(q.StartTime, q.EndTime, period)
	data := &Data{
		Times:   times,
		Period:  period,
		Results: make(map[string]*Result, len(q.Elements)),
	}

	for _, element := range q.Elements {
		address, err := sncl.MapElement(q.ID, element, period, dataType)
		if err != nil {
			return nil, err
		}

		series, err := a.fetcher.Fetch(ctx, q.StartTime, q.EndTime, address)
		if err != nil {
			return nil, err
		}
		if series.Empty() {
			a.logger.WithFields(logrus.Fields{
				"station": address.Station,
				"channel": address.Channel,
				"element": element,
			}).Debug("no data for channel, filling with missing markers")
		}

		data.Results[element] = &Result{
			Address: address,
			Element: element,
			Series:  series,
			Values:  convert(series, times),
		}
	}

	return data, nil
}

// convert aligns the raw series with the time axis and scales samples from
// backend milli-units to output units. Missing samples stay nil.
func convert(series *waves.Series, times []time.Time) []*float64 {
	values := make([]*float64, len(times))
	if series.Empty() {
		return values
	}
	for i, t := range times {
		raw := series.At(t)
		if raw == nil {
			continue
		}
		v := *raw / unitScale
		values[i] = &v
	}
	return values
}
