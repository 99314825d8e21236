package wfs

import (
	"regexp"
	"sort"
)

// Built-in namespace URIs merged under caller assignments.
const (
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"
	GMLNamespace = "http://www.opengis.net/gml/3.2"
	WFSNamespace = "http://www.opengis.net/wfs/2.0"
	FESNamespace = "http://www.opengis.net/fes/2.0"
)

// defaultSchemaLocations maps namespace URIs to their canonical XSDs.
var defaultSchemaLocations = map[string]string{
	WFSNamespace: "http://schemas.opengis.net/wfs/2.0/wfs.xsd",
	GMLNamespace: "http://schemas.opengis.net/gml/3.2.1/gml.xsd",
}

// prefixPattern matches namespace prefixes in element names (opening or
// closing tags) and attribute names. Text content like "EPSG:4326" is
// not matched.
var prefixPattern = regexp.MustCompile(
	`</?([A-Za-z_][A-Za-z0-9_.-]*):|\s([A-Za-z_][A-Za-z0-9_.-]*):[A-Za-z0-9_.-]+="`)

// referencedPrefixes scans an XML fragment for the namespace prefixes
// it uses, returned sorted and deduplicated.
func referencedPrefixes(body string) []string {
	seen := make(map[string]bool)
	for _, m := range prefixPattern.FindAllStringSubmatch(body, -1) {
		prefix := m[1]
		if prefix == "" {
			prefix = m[2]
		}
		if prefix != "" {
			seen[prefix] = true
		}
	}
	prefixes := make([]string, 0, len(seen))
	for prefix := range seen {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	return prefixes
}

// mergeAssignments layers caller assignments over the built-in
// defaults. The result is a fresh map; no package state is mutated.
func mergeAssignments(assignments map[string]string) map[string]string {
	merged := map[string]string{
		"xsi": XSINamespace,
		"gml": GMLNamespace,
		"wfs": WFSNamespace,
		"fes": FESNamespace,
	}
	for prefix, uri := range assignments {
		merged[prefix] = uri
	}
	return merged
}
