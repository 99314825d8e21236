package wfs

import (
	"github.com/rs/zerolog/log"

	"github.com/ogc-tools/geojson-to-wfst/gml"
)

// WarningEmptyFeatureSet is recorded when an action builder is invoked
// with no features; the action returns an empty body instead of failing.
const WarningEmptyFeatureSet = "empty_feature_set"

// warningInfo holds aggregated information about a specific condition.
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects advisory conditions during transaction
// building and logs consolidated summaries. It satisfies gml.WarningSink
// so the geometry encoder reports through the same aggregator.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator.
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a condition occurrence with an example identifier.
func (w *WarningAggregator) Add(condition, exampleID string) {
	if w.warnings[condition] == nil {
		w.warnings[condition] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[condition]
	info.count++

	// Keep up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns how many times a condition was recorded.
func (w *WarningAggregator) Count(condition string) int {
	info := w.warnings[condition]
	if info == nil {
		return 0
	}
	return info.count
}

// LogAll emits one consolidated log line per collected condition.
func (w *WarningAggregator) LogAll(layer string) {
	for condition, info := range w.warnings {
		description, action := describeWarning(condition)
		log.Warn().
			Str("layer", layer).
			Str("condition", condition).
			Int("count", info.count).
			Strs("examples", info.examples).
			Msgf("%s. %s", description, action)
	}
}

func describeWarning(condition string) (description, action string) {
	switch condition {
	case gml.WarningMissingGmlID:
		return "geometry elements encoded without a gml:id", "Omitting the attribute"
	case WarningEmptyFeatureSet:
		return "action builders invoked with no features", "Returning an empty action body"
	default:
		return "unknown advisory condition", "Continuing with fallback behavior"
	}
}
