package compare

import (
	"fmt"
	"strings"

	"kfxcompare/internal/occurrence"
)

// maxListedKeys caps the per-side key listing in mismatch reports.
const maxListedKeys = 10

// Render formats the comparison outcome as the human-readable report the
// debug workflow consumes.
func (r *Result) Render(family string) string {
	switch r.Verdict {
	case VerdictExact:
		return fmt.Sprintf("OK: %s placement matches (%d occurrence(s))\n", family, r.CandCount)
	case VerdictReordered:
		return fmt.Sprintf("OK: %s placement matches as multiset (%d occurrence(s)); order differs\n", family, r.CandCount)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "MISMATCH: %s placement differs\n", family)
	fmt.Fprintf(&b, "ref occurrences: %d\n", r.RefCount)
	fmt.Fprintf(&b, "cand occurrences: %d\n", r.CandCount)
	fmt.Fprintf(&b, "missing keys: %d distinct=%d\n", totalCount(r.Missing), len(r.Missing))
	fmt.Fprintf(&b, "extra keys: %d distinct=%d\n", totalCount(r.Extra), len(r.Extra))

	writeDeltas(&b, "missing in candidate:", r.Missing)
	writeDeltas(&b, "extra in candidate:", r.Extra)

	if r.RefExample != nil || r.CandExample != nil {
		b.WriteString("example:\n")
		writeExample(&b, "ref", r.RefExample)
		writeExample(&b, "cand", r.CandExample)
	}
	return b.String()
}

func totalCount(deltas []Delta) int {
	n := 0
	for _, d := range deltas {
		n += d.Count
	}
	return n
}

func writeDeltas(b *strings.Builder, heading string, deltas []Delta) {
	if len(deltas) == 0 {
		return
	}
	b.WriteString(heading + "\n")
	for i, d := range deltas {
		if i == maxListedKeys {
			fmt.Fprintf(b, "  ... (%d more)\n", len(deltas)-maxListedKeys)
			break
		}
		fmt.Fprintf(b, "  %dx %s\n", d.Count, formatKey(d.Key))
	}
}

func formatKey(k Key) string {
	if k.Kind != "" {
		return fmt.Sprintf("%s/%s: %q", k.Kind, k.Content, k.Fingerprint)
	}
	return fmt.Sprintf("%s: %q", k.Content, k.Fingerprint)
}

func writeExample(b *strings.Builder, side string, o *occurrence.Occurrence) {
	if o == nil {
		return
	}
	eid := "-"
	if o.ElementID != occurrence.NoElementID {
		eid = fmt.Sprintf("%d", o.ElementID)
	}
	style := o.Style
	if style == "" {
		style = "-"
	}
	prefix := ""
	if o.Kind != "" {
		prefix = o.Kind + "/"
	}
	fmt.Fprintf(b, "  %s: %s%s story=%s eid=%s style=%s line=%d fingerprint=%q\n",
		side, prefix, o.Content, o.Storyline, eid, style, o.Line, o.Fingerprint)
}
