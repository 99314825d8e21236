package wfs

import (
	"strings"

	"github.com/ogc-tools/geojson-to-wfst/gml"
)

// FilterFromFeatures synthesizes a fes:Filter selecting the given
// features by resource id, one fes:ResourceId clause per feature.
func FilterFromFeatures(features []Feature, layer string) string {
	var b strings.Builder
	b.WriteString("<fes:Filter>")
	for _, f := range features {
		b.WriteString("<fes:ResourceId rid=\"")
		b.WriteString(gml.Escape(f.ResourceID(layer)))
		b.WriteString("\"/>")
	}
	b.WriteString("</fes:Filter>")
	return b.String()
}
