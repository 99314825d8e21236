package wfs

import (
	"strings"

	"github.com/ogc-tools/geojson-to-wfst/gml"
)

// Insert builds a wfs:Insert action. Each feature becomes an element
// named after its layer, holding the geometry child (tag taken from
// GeometryName, value encoded through the GML 3.2 dialect) followed by
// one child element per whitelisted property. An empty feature set is
// advisory: it records a warning and returns an empty string.
func (bd *Builder) Insert(features []Feature, p Params) (string, error) {
	if len(features) == 0 {
		bd.warnings.Add(WarningEmptyFeatureSet, "wfs:Insert")
		return "", nil
	}

	geometryName := p.GeometryName
	if geometryName == "" {
		geometryName = "geometry"
	}

	var b strings.Builder
	b.WriteString("<wfs:Insert>")
	for _, f := range features {
		layer := resolveLayer(f, p)
		tag := qualify(p.Ns, layer)
		b.WriteString("<")
		b.WriteString(tag)
		b.WriteString(">")

		geomXML, err := gml.Encode32(f.Geometry, gml.Params{
			SrsName:      p.SrsName,
			SrsDimension: p.SrsDimension,
			GmlID:        f.ResourceID(layer),
			Warn:         bd.warnings,
		})
		if err != nil {
			return "", err
		}
		gtag := qualify(p.Ns, geometryName)
		b.WriteString("<")
		b.WriteString(gtag)
		b.WriteString(">")
		b.WriteString(geomXML)
		b.WriteString("</")
		b.WriteString(gtag)
		b.WriteString(">")

		for _, k := range propertyKeys(f.Properties, p.Whitelist) {
			ptag := qualify(p.Ns, k)
			if f.Properties[k] == nil {
				b.WriteString("<")
				b.WriteString(ptag)
				b.WriteString("/>")
				continue
			}
			b.WriteString("<")
			b.WriteString(ptag)
			b.WriteString(">")
			b.WriteString(formatValue(f.Properties[k]))
			b.WriteString("</")
			b.WriteString(ptag)
			b.WriteString(">")
		}

		b.WriteString("</")
		b.WriteString(tag)
		b.WriteString(">")
	}
	b.WriteString("</wfs:Insert>")
	return b.String(), nil
}
