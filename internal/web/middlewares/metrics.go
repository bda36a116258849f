package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "geomagws_requests_total",
		Help: "Number of HTTP requests handled, by path and status.",
	}, []string{"path", "status"})

	latency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "geomagws_request_duration_seconds",
		Help: "HTTP request latency, by path.",
	}, []string{"path"})
)

// Metrics records request counts and latency per path.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		requests.WithLabelValues(r.URL.Path, strconv.Itoa(rec.status)).Inc()
		latency.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}
