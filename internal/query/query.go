// Package query validates raw request parameters and resolves them into an
// immutable Query.
package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/obsnetwork/geomagws/internal/errs"
)

// Format selects the output encoding of a response.
type Format string

// Known output formats. FormatUnset routes to the JSON renderer.
const (
	FormatUnset    Format = ""
	FormatIAGA2002 Format = "iaga2002"
	FormatJSON     Format = "json"
)

// Sampling periods understood by the service, in seconds per sample.
const (
	PeriodSecond = 1
	PeriodMinute = 60
	PeriodHour   = 3600
)

// DefaultElements is used when a request names no elements.
var DefaultElements = []string{"X", "Y", "Z", "F"}

// dayEnd is the offset from the start of a day to its last whole second.
const dayEnd = 86399 * time.Second

// Query is a fully validated request for observatory data. It is built once
// by Builder.ParseQuery and never mutated afterward.
type Query struct {
	ID             string
	StartTime      time.Time
	EndTime        time.Time
	Elements       []string
	SamplingPeriod int // 0 when the request did not set one
	Type           string
	Format         Format
}

// MetadataIndex answers whether an observatory id is known. The observatory
// package's Index satisfies it.
type MetadataIndex interface {
	Has(id string) bool
}

// Builder turns raw request parameters into resolved queries.
type Builder struct {
	metadata MetadataIndex
	now      func() time.Time
}

// NewBuilder creates a Builder that validates observatory ids against
// metadata.
func NewBuilder(metadata MetadataIndex) *Builder {
	return &Builder{metadata: metadata, now: time.Now}
}

// ParseQuery validates raw request parameters and resolves defaults.
//
// Validation is fail fast: the first offending parameter is reported and no
// further parameters are inspected. An empty value leaves the field at its
// default. Defaults are filled only after every explicit parameter has been
// applied, because endtime's default depends on the resolved starttime.
func (b *Builder) ParseQuery(params url.Values) (*Query, error) {
	q := &Query{}
	for name, values := range params {
		if err := b.applyParam(q, name, values); err != nil {
			return nil, err
		}
	}

	if q.ID == "" {
		return nil, errs.BadRequestf("Missing required parameter %q", "id")
	}

	if q.StartTime.IsZero() {
		now := b.now().UTC()
		q.StartTime = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if q.EndTime.IsZero() {
		q.EndTime = q.StartTime.Add(dayEnd)
	}
	if q.Elements == nil {
		q.Elements = append([]string(nil), DefaultElements...)
	}

	return q, nil
}

func (b *Builder) applyParam(q *Query, name string, values []string) error {
	value := ""
	if len(values) > 0 {
		value = values[0]
	}
	if name != "elements" && value == "" {
		// Empty values are treated as absent, not as errors.
		return nil
	}

	switch name {
	case "id":
		id := strings.ToUpper(value)
		if !b.metadata.Has(id) {
			return errs.BadRequestf("Bad id value %q", value)
		}
		q.ID = id

	case "starttime":
		t, err := parseTime("starttime", value)
		if err != nil {
			return err
		}
		q.StartTime = t

	case "endtime":
		t, err := parseTime("endtime", value)
		if err != nil {
			return err
		}
		q.EndTime = t

	case "elements":
		if elements := splitElements(values); len(elements) > 0 {
			q.Elements = elements
		}

	case "sampling_period":
		period, err := strconv.Atoi(value)
		if err != nil || (period != PeriodSecond && period != PeriodMinute && period != PeriodHour) {
			return errs.BadRequestf("Bad sampling_period value %q", value)
		}
		q.SamplingPeriod = period

	case "type":
		if locationCodePattern.MatchString(value) {
			q.Type = value
			return nil
		}
		v, err := validateEnumerated("type", value, dataTypes)
		if err != nil {
			return err
		}
		q.Type = v

	case "format":
		format := Format(strings.ToLower(value))
		if format != FormatIAGA2002 && format != FormatJSON {
			return errs.BadRequestf("Bad format value %q", value)
		}
		q.Format = format

	default:
		return errs.BadRequestf("Unknown parameter %q", name)
	}
	return nil
}

// splitElements flattens repeated and comma separated element values into
// one uppercase list. Order is preserved and duplicates are kept.
func splitElements(values []string) []string {
	var elements []string
	for _, value := range values {
		for _, element := range strings.Split(value, ",") {
			element = strings.TrimSpace(element)
			if element == "" {
				continue
			}
			elements = append(elements, strings.ToUpper(element))
		}
	}
	return elements
}
