package occurrence

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize trims s and collapses internal whitespace runs to single spaces.
// Idempotent, so fingerprints can be re-normalized safely.
func Normalize(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// nearestElementID scans backward from line i, visiting at most lookback
// lines including i, for the nearest numeric element id.
func nearestElementID(lines []string, i, lookback int) int {
	lo := i - lookback + 1
	if lo < 0 {
		lo = 0
	}
	for j := i; j >= lo; j-- {
		if m := eidField.FindStringSubmatch(lines[j]); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}
	return NoElementID
}

// forwardResource scans forward from line i, within window lines, for the
// first resource reference and returns `path[, descriptor]`. The resource id
// itself is regenerated per build and is not part of the result.
func forwardResource(lines []string, i, window int) string {
	hi := i + window
	if hi > len(lines)-1 {
		hi = len(lines) - 1
	}
	for j := i; j <= hi; j++ {
		m := resourceField.FindStringSubmatch(lines[j])
		if m == nil {
			continue
		}
		path := strings.TrimSpace(m[2])
		if extra := strings.TrimSpace(m[3]); extra != "" {
			return path + ", " + extra
		}
		return path
	}
	return ""
}

// closestSnippet searches a symmetric window around line i for the
// best-scored content candidate. Score is 10*distance plus a tie break of 1
// for candidates after i, so equal distances resolve to the preceding
// candidate: content usually appears before its styled wrapper in the dump.
func closestSnippet(lines []string, i, window int, pat *regexp.Regexp) string {
	lo := i - window
	if lo < 0 {
		lo = 0
	}
	hi := i + window
	if hi > len(lines)-1 {
		hi = len(lines) - 1
	}

	best := -1
	text := ""
	for j := lo; j <= hi; j++ {
		m := pat.FindStringSubmatch(lines[j])
		if m == nil {
			continue
		}
		dist := j - i
		if dist < 0 {
			dist = -dist
		}
		score := dist * 10
		if j > i {
			score++
		}
		if best == -1 || score < best {
			best = score
			text = Normalize(m[1])
		}
	}
	return text
}
