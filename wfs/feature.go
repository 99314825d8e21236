package wfs

import (
	"strings"

	"github.com/twpayne/go-geom"
)

// Feature is one feature of a WFS layer: an identifier, a geometry, a
// property mapping and the owning layer name.
type Feature struct {
	ID         string
	Geometry   geom.T
	Properties map[string]any
	Layer      string
}

// ResourceID coerces the feature id to "<layer>.<id>" form, as expected
// by fes:ResourceId. Ids already containing a "." are kept verbatim; an
// empty id stays empty. The feature's own layer wins over the fallback.
func (f Feature) ResourceID(layer string) string {
	if f.ID == "" {
		return ""
	}
	if strings.Contains(f.ID, ".") {
		return f.ID
	}
	if f.Layer != "" {
		layer = f.Layer
	}
	if layer == "" {
		return f.ID
	}
	return layer + "." + f.ID
}
