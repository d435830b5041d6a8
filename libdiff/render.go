package libdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Colors holds the formatting functions used by Render.
type Colors struct {
	Equal  func(string, ...any) string
	Delete func(string, ...any) string
	Insert func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Equal:  color.RGB(128, 128, 128).SprintfFunc(),
		Delete: color.New(color.FgRed, color.CrossedOut).SprintfFunc(),
		Insert: color.New(color.FgGreen, color.Bold).SprintfFunc(),
	}
}

// Render writes diffs to w. With nil colors, changes are delimited by
// the Delete and Insert markers instead.
func Render(w io.Writer, diffs []Diff, colors *Colors) error {
	b := &strings.Builder{}
	for _, d := range diffs {
		switch {
		case colors != nil && d.Op == Equal:
			b.WriteString(colors.Equal("%s", d.Text))
		case colors != nil && d.Op == Delete:
			b.WriteString(colors.Delete("%s", d.Text))
		case colors != nil && d.Op == Insert:
			b.WriteString(colors.Insert("%s", d.Text))
		case d.Op == Delete:
			b.WriteString(DeleteOpen + d.Text + DeleteClose)
		case d.Op == Insert:
			b.WriteString(InsertOpen + d.Text + InsertClose)
		default:
			b.WriteString(d.Text)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
