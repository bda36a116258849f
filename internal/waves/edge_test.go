package waves

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obsnetwork/geomagws/internal/sncl"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func testAddress() sncl.ChannelAddress {
	return sncl.ChannelAddress{Station: "BOU", Network: "NT", Channel: "MVH", Location: "R0"}
}

func TestEdgeClientFetch(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "BOU", q.Get("station"))
		assert.Equal(t, "NT", q.Get("network"))
		assert.Equal(t, "MVH", q.Get("channel"))
		assert.Equal(t, "R0", q.Get("location"))
		assert.Equal(t, "2024-01-01T00:00:00Z", q.Get("starttime"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"start":1704067200,"delta":60,"values":[20888000,null,20890000]}`))
	}))
	defer srv.Close()

	client := NewEdgeClient(srv.URL, testLogger())
	series, err := client.Fetch(context.Background(), start, start.Add(2*time.Minute), testAddress())
	require.NoError(t, err)
	require.NotNil(t, series)

	assert.Equal(t, start, series.Start)
	assert.Equal(t, time.Minute, series.Delta)
	require.Len(t, series.Samples, 3)
	assert.Equal(t, 20888000.0, *series.Samples[0])
	assert.Nil(t, series.Samples[1])
}

func TestEdgeClientFetchMissingChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewEdgeClient(srv.URL, testLogger())
	series, err := client.Fetch(context.Background(), time.Now(), time.Now(), testAddress())
	require.NoError(t, err)
	assert.Nil(t, series)
}

func TestEdgeClientFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewEdgeClient(srv.URL, testLogger())
	series, err := client.Fetch(context.Background(), time.Now(), time.Now(), testAddress())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEdgeStatus)
	assert.Nil(t, series)
}

func TestEdgeClientFetchEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"start":0,"delta":60,"values":[]}`))
	}))
	defer srv.Close()

	client := NewEdgeClient(srv.URL, testLogger())
	series, err := client.Fetch(context.Background(), time.Now(), time.Now(), testAddress())
	require.NoError(t, err)
	assert.Nil(t, series)
}

func TestSeriesAt(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v := 42.0
	series := &Series{
		Start:   start,
		Delta:   time.Minute,
		Samples: []*float64{&v, nil},
	}

	assert.Equal(t, &v, series.At(start))
	assert.Nil(t, series.At(start.Add(time.Minute)))
	// Off-grid and out-of-range instants have no sample.
	assert.Nil(t, series.At(start.Add(30*time.Second)))
	assert.Nil(t, series.At(start.Add(-time.Minute)))
	assert.Nil(t, series.At(start.Add(5*time.Minute)))

	var empty *Series
	assert.True(t, empty.Empty())
	assert.Nil(t, empty.At(start))
}
