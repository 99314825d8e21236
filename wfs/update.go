package wfs

import (
	"strings"

	"github.com/ogc-tools/geojson-to-wfst/gml"
)

// Update builds wfs:Update actions. With top-level Properties set, one
// wfs:Update covers all input features under a single filter. Without
// it, each feature gets its own self-contained wfs:Update built from
// that feature's properties, so one filter cannot clobber another
// feature's values.
func (bd *Builder) Update(features []Feature, p Params) (string, error) {
	if p.Properties != nil {
		return bd.updateOne(features, p)
	}

	if len(features) == 0 {
		bd.warnings.Add(WarningEmptyFeatureSet, "wfs:Update")
		return "", nil
	}
	var b strings.Builder
	for _, f := range features {
		fp := p
		fp.Properties = selectProperties(f.Properties, p.Whitelist)
		fp.Filter = ""
		action, err := bd.updateOne([]Feature{f}, fp)
		if err != nil {
			return "", err
		}
		b.WriteString(action)
	}
	return b.String(), nil
}

func (bd *Builder) updateOne(features []Feature, p Params) (string, error) {
	typeName, err := resolveTypeName(p, features)
	if err != nil {
		return "", err
	}
	filter := p.Filter
	if filter == "" {
		filter = FilterFromFeatures(features, p.Layer)
	}

	var b strings.Builder
	b.WriteString("<wfs:Update typeName=\"")
	b.WriteString(gml.Escape(typeName))
	b.WriteString("\">")

	for _, k := range propertyKeys(p.Properties, nil) {
		v := p.Properties[k]
		if v == nil {
			writeUpdateProperty(&b, qualify(p.Ns, k), "", false)
			continue
		}
		writeUpdateProperty(&b, qualify(p.Ns, k), formatValue(v), true)
	}

	if p.GeometryName != "" && len(features) > 0 && features[0].Geometry != nil {
		f := features[0]
		geomXML, err := gml.Encode32(f.Geometry, gml.Params{
			SrsName:      p.SrsName,
			SrsDimension: p.SrsDimension,
			GmlID:        f.ResourceID(resolveLayer(f, p)),
			Warn:         bd.warnings,
		})
		if err != nil {
			return "", err
		}
		writeUpdateProperty(&b, qualify(p.Ns, p.GeometryName), geomXML, true)
	}

	b.WriteString(filter)
	b.WriteString("</wfs:Update>")
	return b.String(), nil
}

// writeUpdateProperty writes one wfs:Property replacement. An absent
// value (hasValue false) omits wfs:Value, which WFS reads as a reset to
// null. The value is pre-rendered: scalars escaped, geometry raw GML.
func writeUpdateProperty(b *strings.Builder, ref, value string, hasValue bool) {
	b.WriteString("<wfs:Property><wfs:ValueReference>")
	b.WriteString(gml.Escape(ref))
	b.WriteString("</wfs:ValueReference>")
	if hasValue {
		b.WriteString("<wfs:Value>")
		b.WriteString(value)
		b.WriteString("</wfs:Value>")
	}
	b.WriteString("</wfs:Property>")
}

// selectProperties copies the whitelisted entries of one feature's
// property map, or all of them with a nil whitelist.
func selectProperties(props map[string]any, whitelist []string) map[string]any {
	selected := make(map[string]any, len(props))
	for _, k := range propertyKeys(props, whitelist) {
		selected[k] = props[k]
	}
	return selected
}
