package style

// Run is a maximal span of code units sharing identical values across one
// style family. Styles holds the snapshot of all recognized styles active
// at Start, not only the family's.
type Run struct {
	Styles map[string]string
	Start  int
	End    int
}

// Runs partitions [start, end) into maximal runs where every style in
// family holds the same value across consecutive code units. The first
// index of the span always opens a run; there is no look-behind across
// the span boundary. An out-of-range comparison counts as a style change.
func Runs(bs *BlockStyles, family []string, start, end int) []Run {
	var runs []Run
	for i := start; i < end; i++ {
		if i == start || !sameAt(bs, family, i-1, i) {
			runs = append(runs, Run{Styles: bs.Snapshot(i), Start: i, End: i + 1})
		} else {
			runs[len(runs)-1].End = i + 1
		}
	}
	return runs
}

func sameAt(bs *BlockStyles, family []string, a, b int) bool {
	if a < 0 || b < 0 || a >= bs.length || b >= bs.length {
		return false
	}
	for _, name := range family {
		if bs.At(name, a) != bs.At(name, b) {
			return false
		}
	}
	return true
}
