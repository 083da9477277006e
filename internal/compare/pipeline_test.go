package compare

import (
	"strings"
	"testing"

	"kfxcompare/internal/config"
	"kfxcompare/internal/dump"
	"kfxcompare/internal/occurrence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builds a synthetic storyline dump with the given storyline/style ids; the
// quoted content is identical across builds while every id differs.
func syntheticDump(storyline, styleA, styleB string) *dump.Dump {
	lines := []string{
		"  id=$176 (" + storyline + ")",
		"      id ($155): int(1)",
		`      index ($403): 0 /* "The first chapter" */`,
		`      style ($157): symbol("` + styleA + `") /* yj-break-before: avoid */`,
	}
	// Keep the image block out of the text occurrence's forward resource
	// window so the text stays content-anchored.
	for i := 0; i < 25; i++ {
		lines = append(lines, "      filler")
	}
	lines = append(lines,
		"      id ($155): int(2)",
		`      style ($157): symbol("`+styleB+`") /* yj-break-after: avoid */`,
		`      resource_name ($175): symbol("e7") /* resource/rsrc1B3, 2048x170 */`,
	)
	return &dump.Dump{Path: "synthetic-storyline.txt", Lines: lines}
}

func extractYJ(t *testing.T, d *dump.Dump) []occurrence.Occurrence {
	t.Helper()
	return occurrence.Extract(d, occurrence.YJBreak(config.Default().Windows.YJBreak))
}

func TestPipeline_IDRenamingIsInvisible(t *testing.T) {
	ref := extractYJ(t, syntheticDump("l1", "s32", "s33"))
	cand := extractYJ(t, syntheticDump("l3S", "s4J", "s4K"))
	require.Len(t, ref, 2)
	require.Len(t, cand, 2)

	res := Compare(ref, cand)
	assert.Equal(t, VerdictExact, res.Verdict)
	assert.Empty(t, res.Missing)
	assert.Empty(t, res.Extra)
}

func TestPipeline_MissingOccurrence(t *testing.T) {
	ref := syntheticDump("l1", "s32", "s33")

	// Candidate drops the yj-break-before line entirely.
	var lines []string
	for _, line := range syntheticDump("l3S", "s4J", "s4K").Lines {
		if strings.Contains(line, "yj-break-before") {
			continue
		}
		lines = append(lines, line)
	}
	cand := &dump.Dump{Path: "synthetic-candidate.txt", Lines: lines}

	res := Compare(extractYJ(t, ref), extractYJ(t, cand))
	assert.Equal(t, VerdictMismatch, res.Verdict)
	require.Len(t, res.Missing, 1)
	assert.Equal(t, 1, res.Missing[0].Count)
	assert.Equal(t, "before", res.Missing[0].Key.Kind)
	assert.Empty(t, res.Extra)

	require.NotNil(t, res.RefExample)
	assert.Equal(t, "l1", res.RefExample.Storyline)
	assert.Equal(t, 4, res.RefExample.Line)
	assert.Equal(t, "The first chapter", res.RefExample.Fingerprint)
}

func TestPipeline_SwappedOccurrencesReorderOnly(t *testing.T) {
	build := func(first, second string) *dump.Dump {
		return &dump.Dump{Path: "synthetic.txt", Lines: []string{
			"  id=$176 (l1)",
			`      index ($403): 0 /* "` + first + `" */`,
			`      style ($157): symbol("s1") /* break-inside: avoid */`,
			"  id=$177 (l2)",
			`      index ($403): 0 /* "` + second + `" */`,
			`      style ($157): symbol("s2") /* break-inside: avoid */`,
		}}
	}

	fam := occurrence.BreakInside(config.Default().Windows.BreakInside)
	ref := occurrence.Extract(build("alpha", "beta"), fam)
	cand := occurrence.Extract(build("beta", "alpha"), fam)

	res := Compare(ref, cand)
	assert.Equal(t, VerdictReordered, res.Verdict)
	assert.Contains(t, res.Render(fam.Name), "order differs")
}
