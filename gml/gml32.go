package gml

import (
	"strconv"
	"strings"

	"github.com/twpayne/go-geom"
)

// Encode32 encodes a geometry in the GML 3.2 dialect. Coordinates are
// written as gml:pos (points) or gml:posList (sequences) with each
// tuple reversed: input is easting/northing-ordered, GML 3.2 positions
// are latitude-first. Every geometry element carries a gml:id when one
// is supplied; a missing id is advisory and only omits the attribute.
func Encode32(g geom.T, p Params) (string, error) {
	var b strings.Builder
	if err := encode32(&b, g, p, p.SrsName, p.GmlID); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encode32(b *strings.Builder, g geom.T, p Params, srsName, id string) error {
	switch t := g.(type) {
	case *geom.Point:
		write32Point(b, t, p, srsName, id)
	case *geom.LineString:
		write32LineString(b, t, p, srsName, id)
	case *geom.Polygon:
		write32Polygon(b, t, p, srsName, id)
	case *geom.MultiPoint:
		open32(b, "gml:MultiPoint", p, srsName, id)
		for i := 0; i < t.NumPoints(); i++ {
			b.WriteString("<gml:pointMember>")
			write32Point(b, t.Point(i), p, "", p.memberID(i))
			b.WriteString("</gml:pointMember>")
		}
		b.WriteString("</gml:MultiPoint>")
	case *geom.MultiLineString:
		open32(b, "gml:MultiCurve", p, srsName, id)
		for i := 0; i < t.NumLineStrings(); i++ {
			b.WriteString("<gml:curveMember>")
			write32LineString(b, t.LineString(i), p, "", p.memberID(i))
			b.WriteString("</gml:curveMember>")
		}
		b.WriteString("</gml:MultiCurve>")
	case *geom.MultiPolygon:
		open32(b, "gml:MultiSurface", p, srsName, id)
		for i := 0; i < t.NumPolygons(); i++ {
			b.WriteString("<gml:surfaceMember>")
			write32Polygon(b, t.Polygon(i), p, "", p.memberID(i))
			b.WriteString("</gml:surfaceMember>")
		}
		b.WriteString("</gml:MultiSurface>")
	case *geom.GeometryCollection:
		open32(b, "gml:MultiGeometry", p, srsName, id)
		for i, member := range t.Geoms() {
			b.WriteString("<gml:geometryMember>")
			if err := encode32(b, member, p, "", p.memberID(i)); err != nil {
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

// open32 writes an opening geometry tag with its gml:id and srsName
// attributes. A missing id is reported and omitted.
func open32(b *strings.Builder, name string, p Params, srsName, id string) {
	b.WriteString("<")
	b.WriteString(name)
	if id == "" {
		p.warn(WarningMissingGmlID, name)
	} else {
		writeAttr(b, "gml:id", id)
	}
	writeAttr(b, "srsName", srsName)
	b.WriteString(">")
}

func write32Point(b *strings.Builder, pt *geom.Point, p Params, srsName, id string) {
	open32(b, "gml:Point", p, srsName, id)
	write32Pos(b, pt.Coords(), p)
	b.WriteString("</gml:Point>")
}

func write32LineString(b *strings.Builder, ls *geom.LineString, p Params, srsName, id string) {
	open32(b, "gml:LineString", p, srsName, id)
	write32PosList(b, ls.Coords(), p)
	b.WriteString("</gml:LineString>")
}

func write32Polygon(b *strings.Builder, poly *geom.Polygon, p Params, srsName, id string) {
	open32(b, "gml:Polygon", p, srsName, id)
	for i, ring := range poly.Coords() {
		boundary := "gml:interior"
		if i == 0 {
			boundary = "gml:exterior"
		}
		b.WriteString("<")
		b.WriteString(boundary)
		b.WriteString("><gml:LinearRing>")
		write32PosList(b, ring, p)
		b.WriteString("</gml:LinearRing></")
		b.WriteString(boundary)
		b.WriteString(">")
	}
	b.WriteString("</gml:Polygon>")
}

func write32Pos(b *strings.Builder, coord geom.Coord, p Params) {
	b.WriteString("<gml:pos")
	writeSrsDimension(b, p)
	b.WriteString(">")
	joinTuple(b, coord, " ", true)
	b.WriteString("</gml:pos>")
}

func write32PosList(b *strings.Builder, coords []geom.Coord, p Params) {
	b.WriteString("<gml:posList")
	writeSrsDimension(b, p)
	b.WriteString(">")
	for i, coord := range coords {
		if i > 0 {
			b.WriteString(" ")
		}
		joinTuple(b, coord, " ", true)
	}
	b.WriteString("</gml:posList>")
}

func writeSrsDimension(b *strings.Builder, p Params) {
	if p.SrsDimension != 0 {
		writeAttr(b, "srsDimension", strconv.Itoa(p.SrsDimension))
	}
}
