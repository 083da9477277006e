// Package occurrence extracts property occurrences from a loaded dump and
// resolves each to a content-derived fingerprint that survives the storyline
// and style id renumbering between builds.
package occurrence

// ContentKind classifies what a fingerprint is anchored to.
type ContentKind string

const (
	ContentText    ContentKind = "text"
	ContentImage   ContentKind = "image"
	ContentUnknown ContentKind = "unknown"
)

// NoSnippet is the fingerprint used when no anchor candidate exists within
// the configured window. Not an error; it flows through comparison like any
// other value.
const NoSnippet = "<no-snippet>"

// UnknownStoryline marks occurrences seen before the first storyline header.
const UnknownStoryline = "?"

// NoElementID marks occurrences with no numeric element id in the lookback
// window.
const NoElementID = -1

// Occurrence is one detected application of a tracked property,
// fingerprinted for cross-build matching. Storyline, ElementID, Style and
// Line are diagnostic metadata only; they never enter the comparison key.
type Occurrence struct {
	Kind        string // property kind within the family; empty for single-kind families
	Storyline   string
	ElementID   int
	Style       string // as found in the dump; unstable across builds
	Content     ContentKind
	Fingerprint string
	Line        int // 1-based line of the matched property line
}
