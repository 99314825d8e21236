package wfs

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ogc-tools/geojson-to-wfst/gml"
)

// Builder assembles WFS-T 2.0 action and transaction documents. It
// carries the warning aggregator shared by all actions of one
// conversion. A Builder is not safe for concurrent use; create one per
// conversion.
type Builder struct {
	warnings *WarningAggregator
}

// NewBuilder creates a Builder with a fresh warning aggregator.
func NewBuilder() *Builder {
	return &Builder{warnings: NewWarningAggregator()}
}

// Warnings exposes the advisory conditions collected so far.
func (bd *Builder) Warnings() *WarningAggregator {
	return bd.warnings
}

// LogWarnings emits the collected advisories through the global logger.
func (bd *Builder) LogWarnings(layer string) {
	bd.warnings.LogAll(layer)
}

// qualify prefixes a local element name with a namespace prefix.
func qualify(ns, local string) string {
	if ns == "" {
		return local
	}
	return ns + ":" + local
}

// resolveLayer picks the feature's own layer over the params fallback.
func resolveLayer(f Feature, p Params) string {
	if f.Layer != "" {
		return f.Layer
	}
	return p.Layer
}

// resolveTypeName returns the explicit TypeName, or synthesizes
// "<ns>:<layer>Type" from the params and features.
func resolveTypeName(p Params, features []Feature) (string, error) {
	if p.TypeName != "" {
		return p.TypeName, nil
	}
	layer := p.Layer
	if layer == "" && len(features) > 0 {
		layer = features[0].Layer
	}
	if p.Ns == "" || layer == "" {
		return "", MissingTypeNameError{}
	}
	return p.Ns + ":" + layer + "Type", nil
}

// propertyKeys returns the property names to serialize: the whitelist
// order when one is given (skipping absent names), otherwise all keys
// sorted for deterministic output.
func propertyKeys(props map[string]any, whitelist []string) []string {
	if whitelist != nil {
		keys := make([]string, 0, len(whitelist))
		for _, k := range whitelist {
			if _, ok := props[k]; ok {
				keys = append(keys, k)
			}
		}
		return keys
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatValue serializes a scalar property value as escaped XML text.
func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return gml.Escape(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return gml.Escape(fmt.Sprint(t))
	}
}
