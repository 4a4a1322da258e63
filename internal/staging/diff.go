package staging

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ComparisonKind classifies how a staged file relates to its canonical
// counterpart.
type ComparisonKind int

const (
	// NewFile means no canonical counterpart exists yet.
	NewFile ComparisonKind = iota
	// Identical means canonical and staged content are byte-equal.
	Identical
	// Differs means the content differs; UnifiedDiff holds the rendered diff.
	Differs
)

func (k ComparisonKind) String() string {
	switch k {
	case NewFile:
		return "new-file"
	case Identical:
		return "identical"
	case Differs:
		return "differs"
	}
	return "unknown"
}

// Comparison is the result of comparing a staged file with its canonical
// counterpart. Exactly one of Preview and UnifiedDiff is populated, and only
// for the kind it belongs to.
type Comparison struct {
	Kind          ComparisonKind
	StagedPath    string
	CanonicalPath string
	Preview       []string // first lines of the staged file, NewFile only
	UnifiedDiff   string   // Differs only
}

// Compare reads the staged file and its canonical counterpart and reports how
// they relate. previewLines caps the preview shown for files that have no
// counterpart yet. Compare never modifies the filesystem.
func Compare(stagedPath string, previewLines int) (*Comparison, error) {
	sf, err := ParseStagedFile(stagedPath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(stagedPath)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", stagedPath, ErrNotFound)
	}

	stagedData, err := os.ReadFile(stagedPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", stagedPath, err)
	}

	canonical := sf.CanonicalPath()
	canonicalData, err := os.ReadFile(canonical)
	if os.IsNotExist(err) {
		return &Comparison{
			Kind:          NewFile,
			StagedPath:    stagedPath,
			CanonicalPath: canonical,
			Preview:       preview(stagedData, previewLines),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", canonical, err)
	}

	if bytes.Equal(canonicalData, stagedData) {
		return &Comparison{
			Kind:          Identical,
			StagedPath:    stagedPath,
			CanonicalPath: canonical,
		}, nil
	}

	return &Comparison{
		Kind:          Differs,
		StagedPath:    stagedPath,
		CanonicalPath: canonical,
		UnifiedDiff:   unifiedDiff(canonical, stagedPath, string(canonicalData), string(stagedData)),
	}, nil
}

func preview(data []byte, n int) []string {
	lines := splitLines(string(data))
	if n >= 0 && len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

// diffContext is the number of unchanged lines shown around each change.
const diffContext = 3

type lineOp struct {
	kind byte // ' ', '-', or '+'
	text string
}

// unifiedDiff renders a unified-format diff with the canonical (old) file
// first and the staged (new) file second.
func unifiedDiff(oldName, newName, oldText, newText string) string {
	ops := lineOps(oldText, newText)

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", oldName)
	fmt.Fprintf(&b, "+++ b/%s\n", newName)
	for _, h := range buildHunks(ops) {
		fmt.Fprintf(&b, "@@ -%s +%s @@\n", hunkRange(h.oldStart, h.oldCount), hunkRange(h.newStart, h.newCount))
		for _, op := range h.ops {
			b.WriteByte(op.kind)
			b.WriteString(op.text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// lineOps produces a line-level edit script using diffmatchpatch's line mode.
func lineOps(oldText, newText string) []lineOp {
	dmp := diffmatchpatch.New()
	c1, c2, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lines)

	var ops []lineOp
	for _, d := range diffs {
		kind := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = '-'
		case diffmatchpatch.DiffInsert:
			kind = '+'
		}
		for _, ln := range splitLines(d.Text) {
			ops = append(ops, lineOp{kind: kind, text: ln})
		}
	}
	return ops
}

type hunk struct {
	oldStart, oldCount int
	newStart, newCount int
	ops                []lineOp
}

// buildHunks groups the edit script into hunks with diffContext lines of
// context on each side, merging hunks whose context would overlap.
func buildHunks(ops []lineOp) []hunk {
	var changed []int
	for i, op := range ops {
		if op.kind != ' ' {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return nil
	}

	var hunks []hunk
	start := changed[0]
	prev := changed[0]
	for _, idx := range changed[1:] {
		if idx-prev > 2*diffContext {
			hunks = append(hunks, makeHunk(ops, start, prev))
			start = idx
		}
		prev = idx
	}
	hunks = append(hunks, makeHunk(ops, start, prev))
	return hunks
}

// makeHunk cuts ops[first..last] plus context and computes the header numbers.
func makeHunk(ops []lineOp, first, last int) hunk {
	lo := max(first-diffContext, 0)
	hi := min(last+diffContext, len(ops)-1)

	oldLine, newLine := 1, 1
	for _, op := range ops[:lo] {
		if op.kind != '+' {
			oldLine++
		}
		if op.kind != '-' {
			newLine++
		}
	}

	h := hunk{oldStart: oldLine, newStart: newLine, ops: ops[lo : hi+1]}
	for _, op := range h.ops {
		if op.kind != '+' {
			h.oldCount++
		}
		if op.kind != '-' {
			h.newCount++
		}
	}
	// An empty side is numbered from the line before, per unified convention.
	if h.oldCount == 0 {
		h.oldStart--
	}
	if h.newCount == 0 {
		h.newStart--
	}
	return h
}

// hunkRange formats one side of a hunk header, omitting the count when it is
// exactly one line, as diff -u does.
func hunkRange(start, count int) string {
	if count == 1 {
		return strconv.Itoa(start)
	}
	return fmt.Sprintf("%d,%d", start, count)
}

// splitLines splits text into lines without a trailing phantom empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
