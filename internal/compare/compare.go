// Package compare classifies two fingerprinted occurrence sequences as an
// exact match, a multiset match with differing order, or a mismatch with
// per-key diagnostics.
package compare

import (
	"sort"

	"kfxcompare/internal/occurrence"
)

// Key projects an occurrence onto its cross-build identity. Kind is empty
// for single-kind families, so the projection is uniform across families.
type Key struct {
	Kind        string
	Content     occurrence.ContentKind
	Fingerprint string
}

func keyOf(o occurrence.Occurrence) Key {
	return Key{Kind: o.Kind, Content: o.Content, Fingerprint: o.Fingerprint}
}

type Verdict int

const (
	// VerdictExact: per-position key sequences are identical.
	VerdictExact Verdict = iota
	// VerdictReordered: same key multiset, different order. Acceptable;
	// storyline splitting may reorder occurrences without changing placement.
	VerdictReordered
	// VerdictMismatch: the key multisets differ.
	VerdictMismatch
)

func (v Verdict) String() string {
	switch v {
	case VerdictExact:
		return "exact-match"
	case VerdictReordered:
		return "multiset-match"
	case VerdictMismatch:
		return "mismatch"
	}
	return "unknown"
}

// Matched reports whether the verdict counts as a successful comparison.
func (v Verdict) Matched() bool {
	return v == VerdictExact || v == VerdictReordered
}

// Delta is one key together with the multiplicity by which the sides
// disagree on it.
type Delta struct {
	Key   Key
	Count int
}

// Result is the outcome of comparing a reference sequence against a
// candidate sequence.
type Result struct {
	Verdict   Verdict
	RefCount  int
	CandCount int

	// Missing keys are undercounted in the candidate, Extra keys
	// overcounted. Sorted by multiplicity (descending), then key.
	Missing []Delta
	Extra   []Delta

	// One concrete occurrence per side for the first missing (or, absent
	// any, first extra) key, for manual triage. Nil when that side has no
	// occurrence with the key.
	RefExample  *occurrence.Occurrence
	CandExample *occurrence.Occurrence
}

// Compare diffs the candidate occurrence sequence against the reference.
// Both inputs are read-only and independent.
func Compare(ref, cand []occurrence.Occurrence) *Result {
	refKeys := project(ref)
	candKeys := project(cand)
	refTally := tally(refKeys)
	candTally := tally(candKeys)

	res := &Result{RefCount: len(ref), CandCount: len(cand)}

	if talliesEqual(refTally, candTally) {
		res.Verdict = VerdictReordered
		if keysEqual(refKeys, candKeys) {
			res.Verdict = VerdictExact
		}
		return res
	}

	res.Verdict = VerdictMismatch
	for k, rc := range refTally {
		if d := rc - candTally[k]; d > 0 {
			res.Missing = append(res.Missing, Delta{Key: k, Count: d})
		}
	}
	for k, cc := range candTally {
		if d := cc - refTally[k]; d > 0 {
			res.Extra = append(res.Extra, Delta{Key: k, Count: d})
		}
	}
	sortDeltas(res.Missing)
	sortDeltas(res.Extra)

	var probe Key
	switch {
	case len(res.Missing) > 0:
		probe = res.Missing[0].Key
	case len(res.Extra) > 0:
		probe = res.Extra[0].Key
	default:
		return res
	}
	res.RefExample = findOne(ref, probe)
	res.CandExample = findOne(cand, probe)

	return res
}

func project(items []occurrence.Occurrence) []Key {
	keys := make([]Key, len(items))
	for i, it := range items {
		keys[i] = keyOf(it)
	}
	return keys
}

func tally(keys []Key) map[Key]int {
	out := make(map[Key]int, len(keys))
	for _, k := range keys {
		out[k]++
	}
	return out
}

func talliesEqual(a, b map[Key]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, n := range a {
		if b[k] != n {
			return false
		}
	}
	return true
}

func keysEqual(a, b []Key) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortDeltas(deltas []Delta) {
	sort.Slice(deltas, func(i, j int) bool {
		if deltas[i].Count != deltas[j].Count {
			return deltas[i].Count > deltas[j].Count
		}
		if deltas[i].Key.Kind != deltas[j].Key.Kind {
			return deltas[i].Key.Kind < deltas[j].Key.Kind
		}
		if deltas[i].Key.Content != deltas[j].Key.Content {
			return deltas[i].Key.Content < deltas[j].Key.Content
		}
		return deltas[i].Key.Fingerprint < deltas[j].Key.Fingerprint
	})
}

func findOne(items []occurrence.Occurrence, k Key) *occurrence.Occurrence {
	for i := range items {
		if keyOf(items[i]) == k {
			return &items[i]
		}
	}
	return nil
}
