package dump

import "regexp"

// Unknown tags lines seen before the first storyline header.
const Unknown = ""

// Storylines tags every line with the id of the storyline most recently
// opened at or before it. A header line is tagged with the id it opens.
// Implemented as a pure fold so the scan carries no shared state; the result
// is aligned 1:1 with lines.
func Storylines(lines []string, header *regexp.Regexp) []string {
	tags := make([]string, len(lines))
	cur := Unknown
	for i, line := range lines {
		if m := header.FindStringSubmatch(line); m != nil {
			cur = m[1]
		}
		tags[i] = cur
	}
	return tags
}
