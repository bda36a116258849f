// Package geomagws implements a web service for geomagnetic observatory
// time series data.
//
// # Architecture
//
// The service is structured into several key packages:
//   - query: request parameter validation and query resolution
//   - sncl: element to channel address mapping
//   - waves: wave server backends (edge HTTP client, Postgres archive)
//   - assemble: time axis generation and series alignment
//   - render: IAGA-2002 and JSON output encodings
//   - web: HTTP handlers and middleware chain
//   - observatory: static observatory metadata
//
// # Request pipeline
//
// A request is processed in two guarded stages. The query builder
// validates every parameter fail-fast and resolves defaults; a validation
// failure is answered with HTTP 400 before any backend call. The assembler
// then maps each requested element onto its wave server channel, fetches
// the raw series, aligns it with the generated time axis and converts the
// samples to output units. The renderer selected by the query's format
// writes the final body; assembly and render failures are answered with
// HTTP 500.
//
// Example:
//
//	GET /data?id=BOU&starttime=2024-01-01&elements=H,D,Z,F&format=iaga2002
//
// For more information about specific packages, see their respective
// documentation.
package geomagws
