package gml

import "github.com/rs/zerolog/log"

// WarningMissingGmlID is reported when the 3.2 dialect expects an id
// for an element and none was supplied.
const WarningMissingGmlID = "missing_gml_id"

// WarningSink receives advisory conditions encountered during encoding.
// Implementations must not fail the encoding.
type WarningSink interface {
	Add(condition, exampleID string)
}

// Params carries the optional attributes threaded through one encoding
// call. The zero value is valid for both dialects.
type Params struct {
	// SrsName is the coordinate reference system identifier written on
	// the outermost geometry element. Empty omits the attribute.
	SrsName string

	// SrsDimension annotates pos/posList elements in the 3.2 dialect
	// when set to 2 or 3. Zero omits the attribute. The simple-features
	// dialect ignores it.
	SrsDimension int

	// GmlID is assigned to the outermost element in the 3.2 dialect.
	// Empty triggers a WarningMissingGmlID advisory and the attribute
	// is omitted.
	GmlID string

	// GmlIDs assigns ids to the members of a multi geometry, in member
	// order. Short or missing entries behave like a missing GmlID.
	GmlIDs []string

	// Warn receives advisory conditions. Nil falls back to the global
	// zerolog logger.
	Warn WarningSink
}

func (p Params) warn(condition, exampleID string) {
	if p.Warn != nil {
		p.Warn.Add(condition, exampleID)
		return
	}
	log.Warn().
		Str("condition", condition).
		Str("element", exampleID).
		Msg("GML encoding advisory")
}

// memberID returns the id assigned to member i of a multi geometry.
func (p Params) memberID(i int) string {
	if i < len(p.GmlIDs) {
		return p.GmlIDs[i]
	}
	return ""
}
