// Package gml encodes go-geom geometries as GML element strings.
//
// Two dialects are supported:
//
//   - EncodeSimple writes the GML 2.1.2 simple-features profile:
//     flattened gml:coordinates text, outerBoundaryIs/innerBoundaryIs
//     polygon rings, and axis order exactly as given.
//   - Encode32 writes GML 3.2: gml:pos/gml:posList coordinate elements
//     with each tuple reversed (GML 3.2 expects latitude first while
//     GeoJSON carries easting/northing), exterior/interior rings, and a
//     gml:id attribute on every geometry element.
//
// Both encoders are pure functions over their inputs: encoding the same
// geometry with the same Params twice yields byte-identical output.
// Advisory conditions (a gml:id expected but not supplied) are reported
// through the configured WarningSink and never fail the encoding.
package gml
