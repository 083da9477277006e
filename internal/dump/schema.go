package dump

import (
	"fmt"
	"regexp"
)

// FieldTag is the numeric code identifying a tagged field in the upstream
// dump convention, e.g. `id ($155): int(3)`. Tag codes and comment syntax are
// fixed by the decoder that writes the dumps and must be matched verbatim.
type FieldTag int

const (
	TagElementID    FieldTag = 155
	TagStyle        FieldTag = 157
	TagResourceName FieldTag = 175
	TagContentIndex FieldTag = 403
)

// fieldDef ties a tag code to its field name and value syntax. Keeping the
// per-tag pieces in one table means a format change in the decoder breaks
// pattern compilation or the schema tests instead of silently matching
// nothing.
type fieldDef struct {
	name  string
	value string
}

var schema = map[FieldTag]fieldDef{
	// Captures: 1 = element id.
	TagElementID: {name: "id", value: `int\((\d+)\)`},
	// Captures: 1 = style id, 2 = CSS comment body.
	TagStyle: {name: "style", value: `symbol\("(s[^"]+)"\)\s*/\*([^*]*)\*/`},
	// Captures: 1 = resource id, 2 = resource path, 3 = optional descriptor.
	TagResourceName: {name: "resource_name", value: `symbol\("(e[^"]+)"\)\s*/\*\s*(resource/[^,]+?)(?:,\s*([^*]+?))?\s*\*/`},
	// Captures: 1 = quoted text excerpt.
	TagContentIndex: {name: "index", value: `\d+\s*/\* "(.*?)" \*/`},
}

// FieldPattern compiles the extraction pattern for one tagged field.
func FieldPattern(tag FieldTag) *regexp.Regexp {
	def, ok := schema[tag]
	if !ok {
		panic(fmt.Sprintf("dump: no schema entry for field tag $%d", int(tag)))
	}
	return regexp.MustCompile(fmt.Sprintf(`\b%s \(\$%d\): %s`, def.name, int(tag), def.value))
}

// StorylineHeader matches section header lines in an expanded storyline dump,
// capturing the storyline id (`id=$176 (l1)` -> `l1`).
var StorylineHeader = regexp.MustCompile(`^\s*id=\$\d+ \((l[0-9A-Z]+)\)\s*$`)

// MarginHeader matches section header lines in a margin tree dump
// (`storyline: lA` -> `lA`).
var MarginHeader = regexp.MustCompile(`^storyline: (\w+)`)
