package geometry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Validation failures. Returned wrapped with positional context.
var (
	ErrEmptyPolygon      = errors.New("polygon has no rings")
	ErrShortRing         = errors.New("ring has fewer than 4 positions")
	ErrRingNotClosed     = errors.New("ring is not closed")
	ErrShortLineString   = errors.New("line string has fewer than 2 positions")
	ErrMixedDimensions   = errors.New("mixed coordinate dimensions in one geometry")
	ErrUnsupportedLayout = errors.New("unsupported coordinate layout")
)

// Feature is a decoded GeoJSON feature. The id is normalized to its
// string form; numeric ids keep their shortest decimal representation.
type Feature struct {
	ID         string
	Geometry   geom.T
	Properties map[string]any
}

// Decode parses a GeoJSON geometry and validates it. A geometry (or
// collection member) without a recognized "type" tag fails here.
func Decode(data []byte) (geom.T, error) {
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	if err := Validate(g); err != nil {
		return nil, err
	}
	return g, nil
}

type featureDoc struct {
	Type       string          `json:"type"`
	ID         any             `json:"id"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties map[string]any  `json:"properties"`
}

// DecodeFeature parses a GeoJSON feature and validates its geometry.
func DecodeFeature(data []byte) (*Feature, error) {
	var doc featureDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Type != "Feature" {
		return nil, fmt.Errorf("expected a Feature, got %q", doc.Type)
	}
	if len(doc.Geometry) == 0 || string(doc.Geometry) == "null" {
		return nil, errors.New("feature has no geometry")
	}
	g, err := Decode(doc.Geometry)
	if err != nil {
		return nil, err
	}
	return &Feature{ID: normalizeID(doc.ID), Geometry: g, Properties: doc.Properties}, nil
}

type collectionDoc struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

// DecodeFeatureCollection parses a GeoJSON feature collection. A bare
// feature is accepted as a collection of one.
func DecodeFeatureCollection(data []byte) ([]*Feature, error) {
	var doc collectionDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Type == "Feature" {
		f, err := DecodeFeature(data)
		if err != nil {
			return nil, err
		}
		return []*Feature{f}, nil
	}
	if doc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("expected a FeatureCollection, got %q", doc.Type)
	}
	features := make([]*Feature, 0, len(doc.Features))
	for i, raw := range doc.Features {
		f, err := DecodeFeature(raw)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		features = append(features, f)
	}
	return features, nil
}

func normalizeID(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Validate checks the structural invariants the GML encoders rely on.
// Geometries decoded by this package are already validated.
func Validate(g geom.T) error {
	switch t := g.(type) {
	case *geom.Point:
		return checkLayout(t.Layout())
	case *geom.LineString:
		if err := checkLayout(t.Layout()); err != nil {
			return err
		}
		if t.NumCoords() < 2 {
			return ErrShortLineString
		}
		return nil
	case *geom.Polygon:
		if err := checkLayout(t.Layout()); err != nil {
			return err
		}
		return validateRings(t.Coords())
	case *geom.MultiPoint:
		return checkLayout(t.Layout())
	case *geom.MultiLineString:
		if err := checkLayout(t.Layout()); err != nil {
			return err
		}
		for i := 0; i < t.NumLineStrings(); i++ {
			if t.LineString(i).NumCoords() < 2 {
				return fmt.Errorf("line string %d: %w", i, ErrShortLineString)
			}
		}
		return nil
	case *geom.MultiPolygon:
		if err := checkLayout(t.Layout()); err != nil {
			return err
		}
		for i := 0; i < t.NumPolygons(); i++ {
			if err := validateRings(t.Polygon(i).Coords()); err != nil {
				return fmt.Errorf("polygon %d: %w", i, err)
			}
		}
		return nil
	case *geom.GeometryCollection:
		dim := 0
		for i, member := range t.Geoms() {
			if err := Validate(member); err != nil {
				return fmt.Errorf("collection member %d: %w", i, err)
			}
			stride := member.Layout().Stride()
			if dim == 0 {
				dim = stride
			} else if stride != dim {
				return fmt.Errorf("collection member %d: %w", i, ErrMixedDimensions)
			}
		}
		return nil
	default:
		return geom.ErrUnsupportedType{Value: g}
	}
}

func checkLayout(l geom.Layout) error {
	if l != geom.XY && l != geom.XYZ {
		return fmt.Errorf("%w: %v", ErrUnsupportedLayout, l)
	}
	return nil
}

func validateRings(rings [][]geom.Coord) error {
	if len(rings) == 0 {
		return ErrEmptyPolygon
	}
	for i, ring := range rings {
		if len(ring) < 4 {
			return fmt.Errorf("ring %d: %w", i, ErrShortRing)
		}
		first, last := ring[0], ring[len(ring)-1]
		for j := range first {
			if first[j] != last[j] {
				return fmt.Errorf("ring %d: %w", i, ErrRingNotClosed)
			}
		}
	}
	return nil
}
