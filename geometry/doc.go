// Package geometry is the GeoJSON input boundary for the converters.
//
// It decodes GeoJSON geometries, features and feature collections into
// go-geom values and validates the structural invariants the encoders
// rely on: polygons carry at least one ring, rings are closed, line
// strings carry at least two positions, and every coordinate tuple in
// one geometry tree has the same dimensionality (2 or 3).
//
// The encoders themselves trust their inputs; callers constructing
// go-geom values directly may call Validate before encoding.
package geometry
