// Package web wires the HTTP surface of the service: the data pipeline
// handler, the metadata endpoints, and the middleware chain.
package web

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/obsnetwork/geomagws/internal/assemble"
	"github.com/obsnetwork/geomagws/internal/errs"
	"github.com/obsnetwork/geomagws/internal/observatory"
	"github.com/obsnetwork/geomagws/internal/query"
	"github.com/obsnetwork/geomagws/internal/render"
	"github.com/obsnetwork/geomagws/internal/waves"
)

// DataHandler runs the parse, assemble, render pipeline for one request.
// Each stage runs exactly once; a failed parse never reaches the backend,
// and no partial output is written on failure.
type DataHandler struct {
	builder   *query.Builder
	assembler *assemble.Assembler
	metadata  observatory.Index
	logger    *logrus.Logger
}

// NewDataHandler builds the pipeline from its injected collaborators.
func NewDataHandler(metadata observatory.Index, fetcher waves.Fetcher, logger *logrus.Logger) *DataHandler {
	return &DataHandler{
		builder:   query.NewBuilder(metadata),
		assembler: assemble.New(fetcher, logger),
		metadata:  metadata,
		logger:    logger,
	}
}

func (h *DataHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q, err := h.builder.ParseQuery(r.URL.Query())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	data, err := h.assembler.Assemble(r.Context(), q)
	if err != nil {
		if !errs.IsBadRequest(err) {
			err = errs.Serverf("failed to assemble data", err)
		}
		h.respondError(w, r, err)
		return
	}

	obs, _ := h.metadata.Get(q.ID)
	renderer := render.For(q.Format)

	// Render into a buffer first so a failed render produces a clean
	// error response instead of a truncated body.
	var buf bytes.Buffer
	if err := renderer.Render(&buf, data, q, obs); err != nil {
		h.respondError(w, r, errs.Serverf("failed to render response", err))
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Write(buf.Bytes())
}

// apiError is the JSON body returned for failed requests.
type apiError struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *DataHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	label := "server error"
	if errs.IsBadRequest(err) {
		status = http.StatusBadRequest
		label = "bad request"
	}

	if status >= http.StatusInternalServerError {
		h.logger.WithFields(logrus.Fields{
			"path":  r.URL.Path,
			"query": r.URL.RawQuery,
		}).WithError(err).Error("request failed")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiError{Status: status, Error: label, Message: err.Error()})
}
