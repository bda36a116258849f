package middlewares

// Rendered responses are cached in memory. The LRU evicts the least
// recently served queries, so repeated requests for the same window are
// answered without touching the wave server again.

import (
	"bytes"
	"net/http"

	lru "github.com/hashicorp/golang-lru"
)

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

// Cache is an LRU of rendered responses keyed by request URI.
type Cache struct {
	lru *lru.Cache
}

// NewCache sets up an in-memory LRU cache holding up to size responses.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Middleware serves cached responses for repeated GET requests. Only
// successful responses are stored.
func (c *Cache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.RequestURI()
		if entry, ok := c.lru.Get(key); ok {
			resp := entry.(*cachedResponse)
			if resp.contentType != "" {
				w.Header().Set("Content-Type", resp.contentType)
			}
			w.WriteHeader(resp.status)
			w.Write(resp.body)
			return
		}

		rec := &responseBuffer{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.status == http.StatusOK {
			c.lru.Add(key, &cachedResponse{
				status:      rec.status,
				contentType: rec.Header().Get("Content-Type"),
				body:        rec.buf.Bytes(),
			})
		}
	})
}

// responseBuffer tees the response body so it can be cached after serving.
type responseBuffer struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (b *responseBuffer) WriteHeader(code int) {
	b.status = code
	b.ResponseWriter.WriteHeader(code)
}

func (b *responseBuffer) Write(p []byte) (int, error) {
	b.buf.Write(p)
	return b.ResponseWriter.Write(p)
}
