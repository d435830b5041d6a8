package libdiff

import (
	"fmt"
	"strings"
)

// Patch applies diffs to doc, checking that the equal and deleted runs
// match doc. A nil diff leaves doc unchanged.
func Patch(doc string, diffs []Diff) (string, error) {
	if diffs == nil {
		return doc, nil
	}
	b := &strings.Builder{}
	rest := doc
	for i, d := range diffs {
		switch d.Op {
		case Equal, Delete:
			if !strings.HasPrefix(rest, d.Text) {
				return "", fmt.Errorf("cannot patch at run %d: unexpected text %q, expected %q", i, clip(rest, len(d.Text)), d.Text)
			}
			rest = rest[len(d.Text):]
			if d.Op == Equal {
				b.WriteString(d.Text)
			}
		case Insert:
			b.WriteString(d.Text)
		default:
			return "", fmt.Errorf("unexpected op %d at run %d", d.Op, i)
		}
	}
	if rest != "" {
		return "", fmt.Errorf("cannot patch: %d bytes left over", len(rest))
	}
	return b.String(), nil
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
