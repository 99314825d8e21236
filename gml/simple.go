package gml

import (
	"strings"

	"github.com/twpayne/go-geom"
)

// EncodeSimple encodes a geometry in the GML 2.1.2 simple-features
// profile. Coordinates keep their input axis order and are written as a
// single flattened gml:coordinates text node: ordinates joined by the
// cs separator (comma), tuples by the ts separator (space).
func EncodeSimple(g geom.T, p Params) (string, error) {
	var b strings.Builder
	if err := encodeSimple(&b, g, p.SrsName); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encodeSimple(b *strings.Builder, g geom.T, srsName string) error {
	switch t := g.(type) {
	case *geom.Point:
		writeSimplePoint(b, t, srsName)
	case *geom.LineString:
		writeSimpleLineString(b, t, srsName)
	case *geom.Polygon:
		writeSimplePolygon(b, t, srsName)
	case *geom.MultiPoint:
		b.WriteString("<gml:MultiPoint")
		writeAttr(b, "srsName", srsName)
		b.WriteString(">")
		for i := 0; i < t.NumPoints(); i++ {
			b.WriteString("<gml:pointMember>")
			writeSimplePoint(b, t.Point(i), "")
			b.WriteString("</gml:pointMember>")
		}
		b.WriteString("</gml:MultiPoint>")
	case *geom.MultiLineString:
		b.WriteString("<gml:MultiLineString")
		writeAttr(b, "srsName", srsName)
		b.WriteString(">")
		for i := 0; i < t.NumLineStrings(); i++ {
			b.WriteString("<gml:lineStringMember>")
			writeSimpleLineString(b, t.LineString(i), "")
			b.WriteString("</gml:lineStringMember>")
		}
		b.WriteString("</gml:MultiLineString>")
	case *geom.MultiPolygon:
		b.WriteString("<gml:MultiPolygon")
		writeAttr(b, "srsName", srsName)
		b.WriteString(">")
		for i := 0; i < t.NumPolygons(); i++ {
			b.WriteString("<gml:polygonMember>")
			writeSimplePolygon(b, t.Polygon(i), "")
			b.WriteString("</gml:polygonMember>")
		}
		b.WriteString("</gml:MultiPolygon>")
	case *geom.GeometryCollection:
		b.WriteString("<gml:MultiGeometry")
		writeAttr(b, "srsName", srsName)
		b.WriteString(">")
		for _, member := range t.Geoms() {
			b.WriteString("<gml:geometryMember>")
			if err := encodeSimple(b, member, ""); err != nil {
				return err
			}
			b.WriteString("</gml:geometryMember>")
		}
		b.WriteString("</gml:MultiGeometry>")
	default:
		return UnsupportedGeometryError{Geometry: g}
	}
	return nil
}

func writeSimplePoint(b *strings.Builder, pt *geom.Point, srsName string) {
	b.WriteString("<gml:Point")
	writeAttr(b, "srsName", srsName)
	b.WriteString(">")
	writeSimpleCoordinates(b, []geom.Coord{pt.Coords()})
	b.WriteString("</gml:Point>")
}

func writeSimpleLineString(b *strings.Builder, ls *geom.LineString, srsName string) {
	b.WriteString("<gml:LineString")
	writeAttr(b, "srsName", srsName)
	b.WriteString(">")
	writeSimpleCoordinates(b, ls.Coords())
	b.WriteString("</gml:LineString>")
}

func writeSimplePolygon(b *strings.Builder, poly *geom.Polygon, srsName string) {
	b.WriteString("<gml:Polygon")
	writeAttr(b, "srsName", srsName)
	b.WriteString(">")
	for i, ring := range poly.Coords() {
		boundary := "gml:innerBoundaryIs"
		if i == 0 {
			boundary = "gml:outerBoundaryIs"
		}
		b.WriteString("<")
		b.WriteString(boundary)
		b.WriteString("><gml:LinearRing>")
		writeSimpleCoordinates(b, ring)
		b.WriteString("</gml:LinearRing></")
		b.WriteString(boundary)
		b.WriteString(">")
	}
	b.WriteString("</gml:Polygon>")
}

func writeSimpleCoordinates(b *strings.Builder, coords []geom.Coord) {
	b.WriteString("<gml:coordinates cs=\",\" ts=\" \" decimal=\".\">")
	for i, coord := range coords {
		if i > 0 {
			b.WriteString(" ")
		}
		joinTuple(b, coord, ",", false)
	}
	b.WriteString("</gml:coordinates>")
}
