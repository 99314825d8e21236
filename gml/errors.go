package gml

import "fmt"

// UnsupportedGeometryError reports a geometry value outside the closed
// set of encodable types.
type UnsupportedGeometryError struct {
	Geometry any
}

func (e UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("unsupported geometry type %T", e.Geometry)
}
