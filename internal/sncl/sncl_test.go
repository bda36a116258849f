package sncl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obsnetwork/geomagws/internal/errs"
)

func TestMapElement(t *testing.T) {
	tests := []struct {
		name           string
		element        string
		samplingPeriod int
		dataType       string
		want           ChannelAddress
		wantErr        string
	}{
		{
			name:           "minute H variation",
			element:        "H",
			samplingPeriod: 60,
			dataType:       "variation",
			want:           ChannelAddress{Station: "BOU", Network: "NT", Channel: "MVH", Location: "R0"},
		},
		{
			name:           "second F definitive",
			element:        "F",
			samplingPeriod: 1,
			dataType:       "definitive",
			want:           ChannelAddress{Station: "BOU", Network: "NT", Channel: "SSF", Location: "D0"},
		},
		{
			name:           "adjusted location",
			element:        "X",
			samplingPeriod: 60,
			dataType:       "adjusted",
			want:           ChannelAddress{Station: "BOU", Network: "NT", Channel: "MVX", Location: "A0"},
		},
		{
			name:           "quasi-definitive location",
			element:        "Z",
			samplingPeriod: 60,
			dataType:       "quasi-definitive",
			want:           ChannelAddress{Station: "BOU", Network: "NT", Channel: "MVZ", Location: "Q0"},
		},
		{
			name:           "solar quiet",
			element:        "SQ",
			samplingPeriod: 60,
			dataType:       "variation",
			want:           ChannelAddress{Station: "BOU", Network: "NT", Channel: "MSQ", Location: "R0"},
		},
		{
			name:           "disturbance",
			element:        "DIST",
			samplingPeriod: 60,
			dataType:       "variation",
			want:           ChannelAddress{Station: "BOU", Network: "NT", Channel: "MDT", Location: "R0"},
		},
		{
			name:           "dst index",
			element:        "DST",
			samplingPeriod: 60,
			dataType:       "variation",
			want:           ChannelAddress{Station: "BOU", Network: "NT", Channel: "MGD", Location: "R0"},
		},
		{
			name:           "lowercase element is uppercased",
			element:        "h",
			samplingPeriod: 60,
			dataType:       "variation",
			want:           ChannelAddress{Station: "BOU", Network: "NT", Channel: "MVH", Location: "R0"},
		},
		{
			name:           "raw channel passes verbatim",
			element:        "ZZZ",
			samplingPeriod: 60,
			dataType:       "variation",
			want:           ChannelAddress{Station: "BOU", Network: "NT", Channel: "ZZZ", Location: "R0"},
		},
		{
			name:           "location code passed through",
			element:        "H",
			samplingPeriod: 60,
			dataType:       "R1",
			want:           ChannelAddress{Station: "BOU", Network: "NT", Channel: "MVH", Location: "R1"},
		},
		{
			name:           "unknown element",
			element:        "zzzz",
			samplingPeriod: 60,
			dataType:       "variation",
			wantErr:        `Unknown element "ZZZZ"`,
		},
		{
			name:           "hourly sampling rejected",
			element:        "H",
			samplingPeriod: 3600,
			dataType:       "variation",
			wantErr:        "Bad sampling_period value 3600",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapElement("BOU", tt.element, tt.samplingPeriod, tt.dataType)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errs.IsBadRequest(err))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
