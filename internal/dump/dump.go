// Package dump loads kfxdump/kdfdump debug output as an ordered line sequence
// and provides the building blocks shared by all property families: the field
// schema for the upstream tag codes and the per-line storyline tagging.
package dump

import (
	"bufio"
	"fmt"
	"os"
)

// Dump is one loaded debug dump: an ordered sequence of lines with trailing
// newlines stripped. Immutable once loaded.
type Dump struct {
	Path  string
	Lines []string
}

// Load reads a dump file into memory. A read failure is fatal for the
// comparison and is returned as-is; there is no partial result.
func Load(path string) (*Dump, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	// Content comments can carry long text excerpts on a single line.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dump %s: %w", path, err)
	}

	return &Dump{Path: path, Lines: lines}, nil
}
