package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/obsnetwork/geomagws/internal/assemble"
	"github.com/obsnetwork/geomagws/internal/observatory"
	"github.com/obsnetwork/geomagws/internal/query"
)

// missingValue marks absent samples in IAGA2002 output.
const missingValue = 99999.00

// IAGA2002 renders the row-oriented IAGA-2002 text exchange format.
type IAGA2002 struct{}

func (IAGA2002) ContentType() string { return "text/plain; charset=utf-8" }

func (IAGA2002) Render(w io.Writer, data *assemble.Data, q *query.Query, obs observatory.Observatory) error {
	bw := bufio.NewWriter(w)

	dataType := q.Type
	if dataType == "" {
		dataType = "variation"
	}

	writeHeader(bw, "Format", "IAGA-2002")
	writeHeader(bw, "Source of Data", obs.Agency)
	writeHeader(bw, "Station Name", obs.Name)
	writeHeader(bw, "IAGA CODE", obs.ID)
	writeHeader(bw, "Geodetic Latitude", fmt.Sprintf("%.3f", obs.Latitude))
	writeHeader(bw, "Geodetic Longitude", fmt.Sprintf("%.3f", obs.Longitude))
	writeHeader(bw, "Elevation", fmt.Sprintf("%.0f", obs.Elevation))
	writeHeader(bw, "Reported", strings.Join(q.Elements, ""))
	writeHeader(bw, "Sensor Orientation", "")
	writeHeader(bw, "Digital Sampling", "")
	writeHeader(bw, "Data Interval Type", intervalName(data.Period))
	writeHeader(bw, "Data Type", dataType)

	fmt.Fprint(bw, "DATE       TIME         DOY")
	for _, element := range q.Elements {
		fmt.Fprintf(bw, "%10s", obs.ID+element)
	}
	fmt.Fprint(bw, "   |\n")

	for i, t := range data.Times {
		fmt.Fprintf(bw, "%s %s %03d",
			t.Format("2006-01-02"), t.Format("15:04:05.000"), t.YearDay())
		for _, element := range q.Elements {
			value := missingValue
			if result := data.Results[element]; result != nil && result.Values[i] != nil {
				value = *result.Values[i]
			}
			fmt.Fprintf(bw, "%10.2f", value)
		}
		fmt.Fprint(bw, "\n")
	}

	return bw.Flush()
}

// writeHeader emits one fixed-width IAGA2002 header line.
func writeHeader(w io.Writer, name, value string) {
	fmt.Fprintf(w, " %-23s%-45s|\n", name, value)
}

func intervalName(period int) string {
	switch period {
	case query.PeriodSecond:
		return "1-second"
	case query.PeriodHour:
		return "1-hour"
	default:
		return "1-minute"
	}
}
