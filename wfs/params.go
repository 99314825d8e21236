package wfs

// Params configures the transaction builders. All fields are optional;
// each builder documents which ones it consults and how missing values
// are resolved.
type Params struct {
	// Ns is the namespace prefix qualifying layer and property element
	// names, e.g. "topp".
	Ns string

	// Layer names the feature type; used when a feature carries no
	// layer of its own, and for typeName synthesis.
	Layer string

	// GeometryName is the element name of the layer's geometry field.
	// Insert defaults it to "geometry"; Update writes the geometry only
	// when it is set.
	GeometryName string

	// SrsName and SrsDimension are forwarded to the GML 3.2 encoder.
	SrsName      string
	SrsDimension int

	// Whitelist restricts which feature properties are serialized, in
	// the given order. Nil serializes all properties in sorted order.
	Whitelist []string

	// Filter is a pre-built fes:Filter fragment. When empty, one is
	// synthesized from the feature ids.
	Filter string

	// TypeName is the qualified feature type name. When empty it is
	// synthesized as "<Ns>:<Layer>Type"; failing that, the builders
	// return MissingTypeNameError.
	TypeName string

	// Properties switches Update into single-filter mode: one
	// wfs:Update covering all input features with these replacement
	// values. Nil recurses per feature using each feature's own
	// properties.
	Properties map[string]any

	// NsAssignments maps namespace prefixes to URIs, merged over the
	// built-in defaults for xsi, gml, wfs and fes.
	NsAssignments map[string]string

	// SchemaLocations maps namespace URIs to XSD locations for the
	// envelope's xsi:schemaLocation, merged over built-in defaults for
	// the wfs and gml namespaces.
	SchemaLocations map[string]string

	// Version is the transaction version attribute. Anything not of the
	// form "2.0.<patch>" falls back to "2.0.0".
	Version string
}
