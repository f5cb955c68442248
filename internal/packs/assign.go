// Package packs handles question-pack assignment and generation: mapping a
// participant name onto one of the packs listed in the manifest, and sampling
// balanced packs from the question banks.
package packs

// DefaultQuestionSet is served when no manifest is available.
const DefaultQuestionSet = "physical_plausibility"

// PickPackForName deterministically selects a pack for a normalized
// participant name: a 31-multiplier rolling hash over the name's code
// points, wrapped to 32-bit signed range, absolute value, reduced modulo
// the manifest length. The same name always lands on the same pack, with no
// server coordination required. An empty manifest falls back to fallback
// (or DefaultQuestionSet when fallback is empty).
func PickPackForName(name string, manifest []string, fallback string) string {
	if len(manifest) == 0 {
		if fallback != "" {
			return fallback
		}
		return DefaultQuestionSet
	}
	return manifest[HashName(name)%len(manifest)]
}

// HashName returns the non-negative pack index hash for a name. Exposed
// separately so assignment distributions can be inspected offline.
func HashName(name string) int {
	var h int32
	for _, r := range name {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}
