package occurrence

import (
	"regexp"
	"strings"

	"kfxcompare/internal/config"
	"kfxcompare/internal/dump"
)

// Detection is the outcome of a family's property detector for one line.
// An empty Content defers the kind to the anchor strategy.
type Detection struct {
	Kind    string
	Style   string
	Content ContentKind
}

// Family parameterizes the shared extract/fingerprint pipeline for one
// property family: how storyline headers look, which lines carry the
// property, and how wide the anchor windows are.
type Family struct {
	Name           string
	Header         *regexp.Regexp
	Detect         func(line string) (Detection, bool)
	MultiKind      bool
	EIDLookback    int
	ResourceWindow int
	ContentWindow  int
	ContentPattern *regexp.Regexp
}

var (
	styleField    = dump.FieldPattern(dump.TagStyle)
	eidField      = dump.FieldPattern(dump.TagElementID)
	resourceField = dump.FieldPattern(dump.TagResourceName)
	contentField  = dump.FieldPattern(dump.TagContentIndex)
)

// BreakInside tracks `break-inside: avoid` placement. Single-kind and
// text-only, so fingerprints are always content-anchored.
func BreakInside(w config.FamilyWindows) Family {
	return Family{
		Name:   "break-inside",
		Header: dump.StorylineHeader,
		Detect: func(line string) (Detection, bool) {
			m := styleField.FindStringSubmatch(line)
			if m == nil || !strings.Contains(m[2], "break-inside: avoid") {
				return Detection{}, false
			}
			return Detection{Style: m[1]}, true
		},
		EIDLookback:    w.EIDLookback,
		ContentWindow:  w.ContentWindow,
		ContentPattern: contentField,
	}
}

// YJBreak tracks `yj-break-before: avoid` and `yj-break-after: avoid`
// placement. Image entries carry no quoted text but do have a stable resource
// path, so the resource anchor is tried first.
func YJBreak(w config.FamilyWindows) Family {
	return Family{
		Name:   "yj-break",
		Header: dump.StorylineHeader,
		Detect: func(line string) (Detection, bool) {
			m := styleField.FindStringSubmatch(line)
			if m == nil {
				return Detection{}, false
			}
			// First match wins; the upstream convention emits at most one
			// yj-break property per style comment.
			switch {
			case strings.Contains(m[2], "yj-break-before: avoid"):
				return Detection{Kind: "before", Style: m[1]}, true
			case strings.Contains(m[2], "yj-break-after: avoid"):
				return Detection{Kind: "after", Style: m[1]}, true
			}
			return Detection{}, false
		},
		MultiKind:      true,
		EIDLookback:    w.EIDLookback,
		ResourceWindow: w.ResourceWindow,
		ContentWindow:  w.ContentWindow,
		ContentPattern: contentField,
	}
}

var (
	marginEntry  = regexp.MustCompile(`^\s+\[([0-9.]+)\]\s+(text|image|container)\s*(.*)$`)
	marginTop    = regexp.MustCompile(`\bmt=([0-9.]+lh)`)
	marginBottom = regexp.MustCompile(`\bmb=([0-9.]+lh)`)
	quotedText   = regexp.MustCompile(`"([^"]*)"`)
)

// Margins tracks vertical margins over the margin tree dump. Each entry
// carrying mt/mb becomes an occurrence whose kind is the normalized vertical
// margin signature, so a changed margin value surfaces as one missing plus
// one extra key sharing a fingerprint. Horizontal margins (ml=) are present
// in the dump but deliberately not compared.
func Margins(w config.FamilyWindows) Family {
	return Family{
		Name:   "margins",
		Header: dump.MarginHeader,
		Detect: func(line string) (Detection, bool) {
			m := marginEntry.FindStringSubmatch(line)
			if m == nil {
				return Detection{}, false
			}
			var parts []string
			if mt := marginTop.FindStringSubmatch(m[3]); mt != nil {
				parts = append(parts, "mt="+mt[1])
			}
			if mb := marginBottom.FindStringSubmatch(m[3]); mb != nil {
				parts = append(parts, "mb="+mb[1])
			}
			if len(parts) == 0 {
				return Detection{}, false
			}
			det := Detection{Kind: strings.Join(parts, ",")}
			switch m[2] {
			case "text":
				det.Content = ContentText
			case "image":
				det.Content = ContentImage
			default:
				det.Content = ContentUnknown
			}
			return det, true
		},
		MultiKind:      true,
		ContentWindow:  w.ContentWindow,
		ContentPattern: quotedText,
	}
}
