package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/obsnetwork/geomagws/internal/observatory"
	"github.com/obsnetwork/geomagws/internal/waves"
	"github.com/obsnetwork/geomagws/internal/web/middlewares"
)

// ServerConfig holds options for the HTTP server surface.
type ServerConfig struct {
	CacheSize      int     // size of the rendered-response LRU cache
	RateLimit      float64 // requests per second
	RateLimitBurst int     // maximum burst size for rate limiting
	AllowedOrigins []string
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		CacheSize:      1000,
		RateLimit:      5.0,
		RateLimitBurst: 10,
	}
}

// NewRouter assembles the full handler chain: CORS, request IDs, rate
// limiting, logging and metrics around the routed endpoints. Only the data
// endpoint sits behind the response cache.
func NewRouter(metadata observatory.Index, fetcher waves.Fetcher, logger *logrus.Logger, config ServerConfig) (http.Handler, error) {
	cache, err := middlewares.NewCache(config.CacheSize)
	if err != nil {
		return nil, err
	}

	dataHandler := NewDataHandler(metadata, fetcher, logger)

	router := mux.NewRouter()
	router.Handle("/data", cache.Middleware(dataHandler)).Methods(http.MethodGet)
	router.HandleFunc("/observatories", observatoriesHandler(metadata)).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	var handler http.Handler = router
	handler = middlewares.Metrics(handler)
	handler = middlewares.Logging(logger)(handler)
	handler = middlewares.RateLimit(config.RateLimit, config.RateLimitBurst)(handler)
	handler = middlewares.RequestID(handler)
	handler = cors.New(cors.Options{
		AllowedOrigins: config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
	}).Handler(handler)

	return handler, nil
}

func observatoriesHandler(metadata observatory.Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(metadata.All())
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}
