// Package render encodes assembled observatory data into the supported
// output formats.
package render

import (
	"io"

	"github.com/obsnetwork/geomagws/internal/assemble"
	"github.com/obsnetwork/geomagws/internal/observatory"
	"github.com/obsnetwork/geomagws/internal/query"
)

// Renderer writes assembled data in one output encoding.
type Renderer interface {
	ContentType() string
	Render(w io.Writer, data *assemble.Data, q *query.Query, obs observatory.Observatory) error
}

// For returns the renderer bound to a format. The format set is closed; an
// unset format routes to the JSON renderer.
func For(f query.Format) Renderer {
	switch f {
	case query.FormatIAGA2002:
		return IAGA2002{}
	default:
		return JSON{}
	}
}
