// Package sncl maps requested observatory elements onto the wave server's
// station/network/channel/location addressing scheme.
package sncl

import (
	"regexp"
	"strings"

	"github.com/obsnetwork/geomagws/internal/errs"
)

// Network is fixed for all geomagnetic channels.
const Network = "NT"

// ChannelAddress identifies one data stream on the wave server.
type ChannelAddress struct {
	Station  string `json:"station"`
	Network  string `json:"network"`
	Channel  string `json:"channel"`
	Location string `json:"location"`
}

// locationCodes maps processing-level data types to location codes. Any
// other data type value is passed through verbatim, which permits direct
// two-character location overrides.
var locationCodes = map[string]string{
	"variation":        "R0",
	"adjusted":         "A0",
	"quasi-definitive": "Q0",
	"definitive":       "D0",
}

// rawChannelPattern matches element codes that already name a backend
// channel: an uppercase letter followed by two uppercase alphanumerics.
var rawChannelPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{2}$`)

// MapElement resolves an element code to the backend channel address for
// the given station, sampling period and data type. It is a pure function
// with no side effects.
//
// Hourly sampling (3600) has no channel prefix on the wave server and is
// rejected here rather than producing a malformed channel code.
func MapElement(station, element string, samplingPeriod int, dataType string) (ChannelAddress, error) {
	var prefix string
	switch samplingPeriod {
	case 1:
		prefix = "S"
	case 60:
		prefix = "M"
	default:
		return ChannelAddress{}, errs.BadRequestf(
			"Bad sampling_period value %d: no channel prefix defined", samplingPeriod)
	}

	element = strings.ToUpper(element)

	var channel string
	switch element {
	case "D", "E", "H", "X", "Y", "Z":
		channel = prefix + "V" + element
	case "F", "G":
		channel = prefix + "S" + element
	case "SQ", "SV":
		channel = prefix + element
	case "DIST":
		channel = prefix + "DT"
	case "DST":
		channel = prefix + "GD"
	default:
		if !rawChannelPattern.MatchString(element) {
			return ChannelAddress{}, errs.BadRequestf("Unknown element %q", element)
		}
		// The element already names a raw channel, use it verbatim.
		channel = element
	}

	location, ok := locationCodes[dataType]
	if !ok {
		location = dataType
	}

	return ChannelAddress{
		Station:  station,
		Network:  Network,
		Channel:  channel,
		Location: location,
	}, nil
}
