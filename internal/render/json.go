package render

import (
	"encoding/json"
	"io"
	"time"

	"github.com/obsnetwork/geomagws/internal/assemble"
	"github.com/obsnetwork/geomagws/internal/observatory"
	"github.com/obsnetwork/geomagws/internal/query"
	"github.com/obsnetwork/geomagws/internal/sncl"
)

// JSON renders a structured timeseries document. Missing samples are
// encoded as nulls.
type JSON struct{}

func (JSON) ContentType() string { return "application/json" }

type jsonDocument struct {
	Type     string        `json:"type"`
	Metadata jsonMetadata  `json:"metadata"`
	Times    []string      `json:"times"`
	Values   []jsonChannel `json:"values"`
}

type jsonMetadata struct {
	Generated      string                  `json:"generated"`
	Observatory    observatory.Observatory `json:"observatory"`
	Start          string                  `json:"starttime"`
	End            string                  `json:"endtime"`
	SamplingPeriod int                     `json:"sampling_period"`
	Type           string                  `json:"type,omitempty"`
}

type jsonChannel struct {
	ID      string              `json:"id"`
	Element string              `json:"element"`
	SNCL    sncl.ChannelAddress `json:"sncl"`
	Values  []*float64          `json:"values"`
}

func (JSON) Render(w io.Writer, data *assemble.Data, q *query.Query, obs observatory.Observatory) error {
	times := make([]string, len(data.Times))
	for i, t := range data.Times {
		times[i] = t.UTC().Format(time.RFC3339)
	}

	channels := make([]jsonChannel, 0, len(q.Elements))
	for _, element := range q.Elements {
		result := data.Results[element]
		if result == nil {
			continue
		}
		channels = append(channels, jsonChannel{
			ID:      obs.ID + element,
			Element: result.Element,
			SNCL:    result.Address,
			Values:  result.Values,
		})
	}

	doc := jsonDocument{
		Type: "Timeseries",
		Metadata: jsonMetadata{
			Generated:      time.Now().UTC().Format(time.RFC3339),
			Observatory:    obs,
			Start:          q.StartTime.UTC().Format(time.RFC3339),
			End:            q.EndTime.UTC().Format(time.RFC3339),
			SamplingPeriod: data.Period,
			Type:           q.Type,
		},
		Times:  times,
		Values: channels,
	}

	enc := json.NewEncoder(w)
	return enc.Encode(doc)
}
