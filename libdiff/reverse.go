package libdiff

// Reverse returns the diff from the diff's target back to its source.
func Reverse(diffs []Diff) []Diff {
	res := make([]Diff, len(diffs))
	for i, d := range diffs {
		switch d.Op {
		case Delete:
			d.Op = Insert
		case Insert:
			d.Op = Delete
		}
		res[i] = d
	}
	return res
}
