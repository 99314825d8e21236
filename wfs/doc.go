// Package wfs builds WFS-T 2.0 transaction documents from features.
//
// The Builder assembles wfs:Insert, wfs:Update and wfs:Delete action
// elements and wraps them in a wfs:Transaction envelope. Geometries are
// encoded through the gml package's 3.2 dialect. Selection filters are
// fes:Filter fragments synthesized from feature ids when the caller
// does not supply one.
//
// Namespace handling is explicit: the transaction envelope declares an
// xmlns attribute for every prefix referenced in the assembled body,
// resolved from caller-supplied assignments merged over built-in
// defaults for xsi, gml, wfs and fes. A referenced prefix without an
// assignment is a structural error.
//
// Structural failures (unresolvable typeName, unassigned namespace,
// malformed actions input) return typed errors; advisory conditions
// (empty feature set, missing gml:id) are collected on the Builder's
// WarningAggregator and never fail the call.
package wfs
