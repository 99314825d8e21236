package gml

import (
	"errors"
	"strings"
	"testing"

	"github.com/twpayne/go-geom"
)

// sinkRecorder collects advisory conditions for assertions.
type sinkRecorder struct {
	conditions []string
}

func (s *sinkRecorder) Add(condition, exampleID string) {
	s.conditions = append(s.conditions, condition)
}

func TestEncode32PointAxisOrderReversed(t *testing.T) {
	pt := geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{-72.5, 42.3})

	out, err := Encode32(pt, Params{GmlID: "pt.1"})
	if err != nil {
		t.Fatalf("Encode32 failed: %v", err)
	}
	want := `<gml:Point gml:id="pt.1"><gml:pos>42.3 -72.5</gml:pos></gml:Point>`
	if out != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}

func TestEncode32PointXYZ(t *testing.T) {
	pt := geom.NewPoint(geom.XYZ).MustSetCoords(geom.Coord{1, 2, 3})

	out, err := Encode32(pt, Params{GmlID: "pt.1", SrsDimension: 3})
	if err != nil {
		t.Fatalf("Encode32 failed: %v", err)
	}
	if !strings.Contains(out, `<gml:pos srsDimension="3">3 2 1</gml:pos>`) {
		t.Errorf("expected reversed 3d tuple with srsDimension, got %s", out)
	}
}

func TestEncode32PosListReversal(t *testing.T) {
	ls := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{1, 2}, {3, 4}})

	out, err := Encode32(ls, Params{GmlID: "ls.1"})
	if err != nil {
		t.Fatalf("Encode32 failed: %v", err)
	}
	if !strings.Contains(out, "<gml:posList>2 1 4 3</gml:posList>") {
		t.Errorf("expected each tuple reversed in posList, got %s", out)
	}
}

func TestEncode32PolygonRings(t *testing.T) {
	poly := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		{{1, 1}, {2, 1}, {2, 2}, {1, 1}},
		{{5, 5}, {6, 5}, {6, 6}, {5, 5}},
	})

	out, err := Encode32(poly, Params{GmlID: "poly.1"})
	if err != nil {
		t.Fatalf("Encode32 failed: %v", err)
	}
	if n := strings.Count(out, "<gml:exterior>"); n != 1 {
		t.Errorf("expected exactly 1 exterior, got %d", n)
	}
	if n := strings.Count(out, "<gml:interior>"); n != 2 {
		t.Errorf("expected exactly 2 interior, got %d", n)
	}
}

func TestEncode32MultiGeometries(t *testing.T) {
	tests := []struct {
		name    string
		g       geom.T
		wrapper string
		member  string
	}{
		{
			name: "multi point",
			g: geom.NewMultiPoint(geom.XY).MustSetCoords(
				[]geom.Coord{{0, 0}, {1, 1}}),
			wrapper: "gml:MultiPoint",
			member:  "gml:pointMember",
		},
		{
			name: "multi line string becomes MultiCurve",
			g: geom.NewMultiLineString(geom.XY).MustSetCoords(
				[][]geom.Coord{{{0, 0}, {1, 1}}}),
			wrapper: "gml:MultiCurve",
			member:  "gml:curveMember",
		},
		{
			name: "multi polygon becomes MultiSurface",
			g: geom.NewMultiPolygon(geom.XY).MustSetCoords(
				[][][]geom.Coord{{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}}),
			wrapper: "gml:MultiSurface",
			member:  "gml:surfaceMember",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode32(tt.g, Params{GmlID: "g.1", GmlIDs: []string{"g.1.m0", "g.1.m1"}})
			if err != nil {
				t.Fatalf("Encode32 failed: %v", err)
			}
			if !strings.HasPrefix(out, "<"+tt.wrapper) {
				t.Errorf("expected wrapper %s, got %s", tt.wrapper, out)
			}
			if !strings.Contains(out, "<"+tt.member+">") {
				t.Errorf("expected member tag %s, got %s", tt.member, out)
			}
			if !strings.Contains(out, `gml:id="g.1.m0"`) {
				t.Errorf("expected member id from GmlIDs, got %s", out)
			}
		})
	}
}

func TestEncode32GeometryCollection(t *testing.T) {
	gc := geom.NewGeometryCollection().MustPush(
		geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{0, 0}),
		geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{1, 1}, {2, 2}}),
	)

	out, err := Encode32(gc, Params{GmlID: "gc.1", GmlIDs: []string{"gc.1.0", "gc.1.1"}})
	if err != nil {
		t.Fatalf("Encode32 failed: %v", err)
	}
	if !strings.HasPrefix(out, `<gml:MultiGeometry gml:id="gc.1">`) {
		t.Errorf("expected MultiGeometry wrapper, got %s", out)
	}
	if n := strings.Count(out, "<gml:geometryMember>"); n != 2 {
		t.Errorf("expected 2 geometryMember elements, got %d", n)
	}
}

func TestEncode32SrsNameOnlyWhenSupplied(t *testing.T) {
	pt := geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{0, 0})

	out, err := Encode32(pt, Params{GmlID: "pt.1"})
	if err != nil {
		t.Fatalf("Encode32 failed: %v", err)
	}
	if strings.Contains(out, "srsName") {
		t.Errorf("expected no srsName attribute by default, got %s", out)
	}

	out, err = Encode32(pt, Params{GmlID: "pt.1", SrsName: "urn:ogc:def:crs:EPSG::4326"})
	if err != nil {
		t.Fatalf("Encode32 failed: %v", err)
	}
	if !strings.Contains(out, `srsName="urn:ogc:def:crs:EPSG::4326"`) {
		t.Errorf("expected srsName attribute, got %s", out)
	}
}

func TestEncode32MissingIDIsAdvisory(t *testing.T) {
	pt := geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{0, 0})
	sink := &sinkRecorder{}

	out, err := Encode32(pt, Params{Warn: sink})
	if err != nil {
		t.Fatalf("expected a missing id to stay non-fatal, got %v", err)
	}
	if strings.Contains(out, "gml:id") {
		t.Errorf("expected no gml:id attribute, got %s", out)
	}
	if len(sink.conditions) != 1 || sink.conditions[0] != WarningMissingGmlID {
		t.Errorf("expected one %s advisory, got %v", WarningMissingGmlID, sink.conditions)
	}
}

func TestEncode32UnsupportedGeometry(t *testing.T) {
	_, err := Encode32(nil, Params{GmlID: "g"})
	var unsupported UnsupportedGeometryError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedGeometryError, got %v", err)
	}
}

func TestEncode32Idempotent(t *testing.T) {
	mp := geom.NewMultiPoint(geom.XY).MustSetCoords([]geom.Coord{{0.1, 0.2}, {3.4, 5.6}})
	p := Params{GmlID: "mp.1", GmlIDs: []string{"mp.1.0", "mp.1.1"}, SrsName: "EPSG:4326"}

	first, err := Encode32(mp, p)
	if err != nil {
		t.Fatalf("Encode32 failed: %v", err)
	}
	second, err := Encode32(mp, p)
	if err != nil {
		t.Fatalf("Encode32 failed: %v", err)
	}
	if first != second {
		t.Errorf("expected byte-identical output, got %q and %q", first, second)
	}
}
