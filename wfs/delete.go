package wfs

import (
	"strings"

	"github.com/ogc-tools/geojson-to-wfst/gml"
)

// Delete builds a wfs:Delete action wrapping a fes:Filter of
// fes:ResourceId clauses, one per feature id, unless a pre-built filter
// is supplied. The typeName is synthesized from Ns and Layer when not
// given explicitly.
func (bd *Builder) Delete(features []Feature, p Params) (string, error) {
	if len(features) == 0 && p.Filter == "" {
		bd.warnings.Add(WarningEmptyFeatureSet, "wfs:Delete")
		return "", nil
	}
	typeName, err := resolveTypeName(p, features)
	if err != nil {
		return "", err
	}
	filter := p.Filter
	if filter == "" {
		filter = FilterFromFeatures(features, p.Layer)
	}

	var b strings.Builder
	b.WriteString("<wfs:Delete typeName=\"")
	b.WriteString(gml.Escape(typeName))
	b.WriteString("\">")
	b.WriteString(filter)
	b.WriteString("</wfs:Delete>")
	return b.String(), nil
}
