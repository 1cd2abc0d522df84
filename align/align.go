package align

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/toonfmt/toon-format/go-toon/syntax"
	"github.com/toonfmt/toon-format/go-toon/token"
)

// Report aggregates what a buffer-wide operation touched.  Zero
// regions is a valid no-op outcome, not an error.
type Report struct {
	Regions int
	Rows    int
}

// columnWidths computes the maximum display width per column over all
// of a region's rows.  Widths are Unicode display widths, not byte
// counts, so CJK and combining text align visually.  The table is
// rebuilt in full on every call; there is no incremental state to
// fall out of date between edits.
func columnWidths(lines []string, r Region) []int {
	var widths []int
	for _, ln := range r.RowLines {
		for i, v := range token.RowValues(lines[ln], r.Delimiter) {
			w := runewidth.StringWidth(v)
			if i == len(widths) {
				widths = append(widths, w)
			} else if w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func leadingWhitespace(ln string) string {
	return ln[:len(ln)-len(strings.TrimLeft(ln, " \t"))]
}

// AlignRegion rewrites the region's rows with every column except the
// last padded to the column's maximum width.  The rows' own leading
// indentation is kept verbatim.  Returns the number of rows rewritten.
func AlignRegion(lines []string, r Region) int {
	widths := columnWidths(lines, r)
	sep := r.Delimiter.Join()
	for _, ln := range r.RowLines {
		vals := token.RowValues(lines[ln], r.Delimiter)
		for i, v := range vals {
			if i == len(vals)-1 {
				continue
			}
			if pad := widths[i] - runewidth.StringWidth(v); pad > 0 {
				vals[i] = v + strings.Repeat(" ", pad)
			}
		}
		lines[ln] = leadingWhitespace(lines[ln]) + strings.Join(vals, sep)
	}
	return len(r.RowLines)
}

// ShrinkRegion rewrites the region's rows with all values trimmed and
// joined by the bare delimiter, no padding.
func ShrinkRegion(lines []string, r Region) int {
	sep := r.Delimiter.Bare()
	for _, ln := range r.RowLines {
		vals := token.RowValues(lines[ln], r.Delimiter)
		lines[ln] = leadingWhitespace(lines[ln]) + strings.Join(vals, sep)
	}
	return len(r.RowLines)
}

// AlignBuffer aligns every tabular region of the document in place.
// Regions are processed in descending start-line order: rewrites
// preserve line count today, but descending order keeps every
// not-yet-processed region's line numbers valid even if that ever
// changes.
func AlignBuffer(lines []string, p syntax.Provider) (Report, error) {
	return eachRegion(lines, p, AlignRegion)
}

// ShrinkBuffer shrinks every tabular region of the document in place.
func ShrinkBuffer(lines []string, p syntax.Provider) (Report, error) {
	return eachRegion(lines, p, ShrinkRegion)
}

func eachRegion(lines []string, p syntax.Provider, op func([]string, Region) int) (Report, error) {
	var rep Report
	if p == nil {
		return rep, nil
	}
	tree, err := p.Outline(lines)
	if err != nil {
		return rep, err
	}
	regions := Locate(tree, lines)
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].StartLine > regions[j].StartLine
	})
	for _, r := range regions {
		rep.Rows += op(lines, r)
		rep.Regions++
	}
	return rep, nil
}

// AlignText is a convenience wrapper over AlignBuffer for whole
// documents held as a single string.
func AlignText(doc string, p syntax.Provider) (string, Report, error) {
	lines := strings.Split(doc, "\n")
	rep, err := AlignBuffer(lines, p)
	return strings.Join(lines, "\n"), rep, err
}

// ShrinkText is the shrink counterpart of AlignText.
func ShrinkText(doc string, p syntax.Provider) (string, Report, error) {
	lines := strings.Split(doc, "\n")
	rep, err := ShrinkBuffer(lines, p)
	return strings.Join(lines, "\n"), rep, err
}
