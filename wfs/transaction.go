package wfs

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ogc-tools/geojson-to-wfst/gml"
)

// TransactionGroup maps feature sets to the actions built from them.
// At least one set must be non-nil.
type TransactionGroup struct {
	Insert []Feature
	Update []Feature
	Delete []Feature
}

var versionPattern = regexp.MustCompile(`^2\.0\.\d+$`)

// Transaction wraps actions in a wfs:Transaction envelope. The actions
// argument is a pre-built action string, a slice of them, or a
// TransactionGroup whose feature sets are passed through Insert, Update
// and Delete; anything else returns UnexpectedActionError.
//
// The envelope declares an xmlns attribute for every namespace prefix
// referenced in the assembled body (plus wfs and xsi for the envelope
// itself), resolved from Params.NsAssignments merged over the built-in
// defaults. A referenced prefix without an assignment returns
// UnassignedNamespaceError.
func (bd *Builder) Transaction(actions any, p Params) (string, error) {
	body, err := bd.transactionBody(actions, p)
	if err != nil {
		return "", err
	}

	version := "2.0.0"
	if versionPattern.MatchString(p.Version) {
		version = p.Version
	}

	merged := mergeAssignments(p.NsAssignments)
	prefixes := envelopePrefixes(body)
	for _, prefix := range prefixes {
		if _, ok := merged[prefix]; !ok {
			return "", UnassignedNamespaceError{Prefix: prefix}
		}
	}

	var b strings.Builder
	b.WriteString("<wfs:Transaction service=\"WFS\" version=\"")
	b.WriteString(version)
	b.WriteString("\"")
	for _, prefix := range prefixes {
		b.WriteString(" xmlns:")
		b.WriteString(prefix)
		b.WriteString("=\"")
		b.WriteString(gml.Escape(merged[prefix]))
		b.WriteString("\"")
	}
	if loc := schemaLocation(prefixes, merged, p.SchemaLocations); loc != "" {
		b.WriteString(" xsi:schemaLocation=\"")
		b.WriteString(gml.Escape(loc))
		b.WriteString("\"")
	}
	b.WriteString(">")
	b.WriteString(body)
	b.WriteString("</wfs:Transaction>")
	return b.String(), nil
}

func (bd *Builder) transactionBody(actions any, p Params) (string, error) {
	switch a := actions.(type) {
	case string:
		return a, nil
	case []string:
		return strings.Join(a, ""), nil
	case TransactionGroup:
		return bd.groupBody(a, p)
	case *TransactionGroup:
		if a != nil {
			return bd.groupBody(*a, p)
		}
	}
	return "", UnexpectedActionError{Value: actions}
}

func (bd *Builder) groupBody(g TransactionGroup, p Params) (string, error) {
	if g.Insert == nil && g.Update == nil && g.Delete == nil {
		return "", UnexpectedActionError{Value: g}
	}
	var b strings.Builder
	if g.Insert != nil {
		action, err := bd.Insert(g.Insert, p)
		if err != nil {
			return "", err
		}
		b.WriteString(action)
	}
	if g.Update != nil {
		action, err := bd.Update(g.Update, p)
		if err != nil {
			return "", err
		}
		b.WriteString(action)
	}
	if g.Delete != nil {
		action, err := bd.Delete(g.Delete, p)
		if err != nil {
			return "", err
		}
		b.WriteString(action)
	}
	return b.String(), nil
}

// envelopePrefixes is the sorted union of the prefixes referenced in
// the body and the ones the envelope itself needs.
func envelopePrefixes(body string) []string {
	prefixes := referencedPrefixes(body)
	for _, required := range []string{"wfs", "xsi"} {
		found := false
		for _, prefix := range prefixes {
			if prefix == required {
				found = true
				break
			}
		}
		if !found {
			prefixes = append(prefixes, required)
		}
	}
	sort.Strings(prefixes)
	return prefixes
}

// schemaLocation builds the xsi:schemaLocation value: namespace-URI /
// XSD-location pairs for every declared namespace with a known schema,
// caller locations merged over the built-in defaults.
func schemaLocation(prefixes []string, assignments, locations map[string]string) string {
	merged := make(map[string]string, len(defaultSchemaLocations)+len(locations))
	for uri, loc := range defaultSchemaLocations {
		merged[uri] = loc
	}
	for uri, loc := range locations {
		merged[uri] = loc
	}

	var pairs []string
	seen := make(map[string]bool)
	for _, prefix := range prefixes {
		uri := assignments[prefix]
		if uri == "" || seen[uri] {
			continue
		}
		seen[uri] = true
		if loc, ok := merged[uri]; ok {
			pairs = append(pairs, uri+" "+loc)
		}
	}
	return strings.Join(pairs, " ")
}
