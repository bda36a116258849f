package waves

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/obsnetwork/geomagws/internal/sncl"
)

var (
	ErrEdgeRequest = errors.New("error making wave server request")
	ErrEdgeStatus  = errors.New("error status from wave server")
)

// EdgeClient fetches sample series from an edge wave server over HTTP.
type EdgeClient struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

// NewEdgeClient creates a client for the wave server timeseries endpoint at
// baseURL.
func NewEdgeClient(baseURL string, logger *logrus.Logger) *EdgeClient {
	return &EdgeClient{
		baseURL: baseURL,
		client:  &http.Client{},
		logger:  logger,
	}
}

// edgeResponse mirrors the wave server's JSON payload. Values are reported
// in milli-units; nulls mark missing samples.
type edgeResponse struct {
	Start  int64      `json:"start"`
	Delta  float64    `json:"delta"`
	Values []*float64 `json:"values"`
}

// Fetch retrieves the raw series for one channel. A 404 from the wave
// server means the channel does not exist and yields a nil series.
func (c *EdgeClient) Fetch(ctx context.Context, start, end time.Time, address sncl.ChannelAddress) (*Series, error) {
	params := url.Values{}
	params.Set("starttime", start.UTC().Format(time.RFC3339))
	params.Set("endtime", end.UTC().Format(time.RFC3339))
	params.Set("station", address.Station)
	params.Set("network", address.Network)
	params.Set("channel", address.Channel)
	params.Set("location", address.Location)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEdgeRequest, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEdgeRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.logger.WithFields(logrus.Fields{
			"station": address.Station,
			"channel": address.Channel,
		}).Debug("wave server has no such channel")
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: got %d", ErrEdgeStatus, resp.StatusCode)
	}

	var payload edgeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode wave server response: %v", err)
	}

	if len(payload.Values) == 0 {
		return nil, nil
	}

	return &Series{
		Address: address,
		Start:   time.Unix(payload.Start, 0).UTC(),
		Delta:   time.Duration(payload.Delta * float64(time.Second)),
		Samples: payload.Values,
	}, nil
}

var _ Fetcher = (*EdgeClient)(nil)
