package occurrence

import (
	"kfxcompare/internal/dump"
)

// Extract runs the family's detector over every line of the dump and
// fingerprints each hit. Occurrence order equals line order of the matched
// property lines; a line yields at most one occurrence.
func Extract(d *dump.Dump, fam Family) []Occurrence {
	tags := dump.Storylines(d.Lines, fam.Header)

	var out []Occurrence
	for i, line := range d.Lines {
		det, ok := fam.Detect(line)
		if !ok {
			continue
		}

		occ := Occurrence{
			Kind:      det.Kind,
			Style:     det.Style,
			Content:   det.Content,
			ElementID: NoElementID,
			Line:      i + 1,
		}

		occ.Storyline = tags[i]
		if occ.Storyline == dump.Unknown {
			occ.Storyline = UnknownStoryline
		}

		if fam.EIDLookback > 0 {
			occ.ElementID = nearestElementID(d.Lines, i, fam.EIDLookback)
		}

		resolveFingerprint(&occ, d.Lines, i, fam)
		out = append(out, occ)
	}
	return out
}

// resolveFingerprint applies the family's anchor policy: resource-anchored
// first where enabled (images have a stable path but no quoted text), then
// content-anchored (text has nearby quoted content but no stable path). The
// fingerprint depends only on the window of lines, never on ids or line
// numbers.
func resolveFingerprint(occ *Occurrence, lines []string, i int, fam Family) {
	if fam.ResourceWindow > 0 {
		if ident := forwardResource(lines, i, fam.ResourceWindow); ident != "" {
			occ.Content = ContentImage
			occ.Fingerprint = ident
			return
		}
	}

	snippet := closestSnippet(lines, i, fam.ContentWindow, fam.ContentPattern)
	if snippet == "" {
		occ.Content = ContentUnknown
		occ.Fingerprint = NoSnippet
		return
	}
	if occ.Content == "" {
		occ.Content = ContentText
	}
	occ.Fingerprint = snippet
}
