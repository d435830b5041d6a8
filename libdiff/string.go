package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (op Op) String() string {
	switch op {
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return "equal"
	}
}

// Diff is one run of a text diff.
type Diff struct {
	Op   Op
	Text string
}

// Text returns the diff from from to to, or nil when they are equal.
// Multi-line inputs are first compared line by line. Edits are widened to
// whole words, so a changed number or name reads as one replacement.
func Text(from, to string) []Diff {
	if from == to {
		return nil
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffCleanupSemantic(diffCfg.DiffMain(from, to, doMultiLine))
	res := make([]Diff, 0, len(diffs))
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		res = append(res, Diff{Op: op, Text: d.Text})
	}
	return widen(res)
}

type edit struct {
	del, ins string
}

// widen moves word characters from the equal runs around each edit into
// the edit. Edits left adjacent are merged into one delete and one insert.
func widen(diffs []Diff) []Diff {
	eqs := []string{""}
	var edits []edit
	inEdit := false
	for _, d := range diffs {
		if d.Op == Equal {
			if inEdit {
				eqs = append(eqs, "")
				inEdit = false
			}
			eqs[len(eqs)-1] += d.Text
			continue
		}
		if !inEdit {
			edits = append(edits, edit{})
			inEdit = true
		}
		e := &edits[len(edits)-1]
		if d.Op == Delete {
			e.del += d.Text
		} else {
			e.ins += d.Text
		}
	}
	if inEdit {
		eqs = append(eqs, "")
	}

	for i := range edits {
		e := &edits[i]
		pre := eqs[i]
		if k := trailingWord(pre); k > 0 && (startsWord(e.del) || startsWord(e.ins)) {
			w := pre[len(pre)-k:]
			e.del, e.ins = w+e.del, w+e.ins
			eqs[i] = pre[:len(pre)-k]
		}
		post := eqs[i+1]
		if k := leadingWord(post); k > 0 && (endsWord(e.del) || endsWord(e.ins)) {
			w := post[:k]
			e.del, e.ins = e.del+w, e.ins+w
			eqs[i+1] = post[k:]
		}
	}

	res := make([]Diff, 0, len(diffs))
	var pend edit
	flush := func() {
		if pend.del != "" {
			res = append(res, Diff{Op: Delete, Text: pend.del})
		}
		if pend.ins != "" {
			res = append(res, Diff{Op: Insert, Text: pend.ins})
		}
		pend = edit{}
	}
	for i, eq := range eqs {
		if eq != "" {
			flush()
			res = append(res, Diff{Op: Equal, Text: eq})
		}
		if i < len(edits) {
			pend.del += edits[i].del
			pend.ins += edits[i].ins
		}
	}
	flush()
	return res
}

func isWord(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func leadingWord(s string) int {
	n := 0
	for n < len(s) && isWord(s[n]) {
		n++
	}
	return n
}

func trailingWord(s string) int {
	n := 0
	for n < len(s) && isWord(s[len(s)-1-n]) {
		n++
	}
	return n
}

func startsWord(s string) bool {
	return s != "" && isWord(s[0])
}

func endsWord(s string) bool {
	return s != "" && isWord(s[len(s)-1])
}

// Size returns the number of inserted and deleted bytes.
func Size(diffs []Diff) int {
	n := 0
	for _, d := range diffs {
		if d.Op != Equal {
			n += len(d.Text)
		}
	}
	return n
}

// From reconstructs the text the diff was taken from.
func From(diffs []Diff) string {
	return join(diffs, Insert)
}

// To reconstructs the text the diff leads to.
func To(diffs []Diff) string {
	return join(diffs, Delete)
}

func join(diffs []Diff, omit Op) string {
	b := &strings.Builder{}
	for _, d := range diffs {
		if d.Op != omit {
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
