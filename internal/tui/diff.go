package tui

import (
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"notepad/internal/tui/util"
)

// renderChanges renders a line diff between the persisted text and the
// buffer. Unchanged lines are faint; removed lines are prefixed "- " and
// added lines "+ ".
func renderChanges(stored, current string, s util.Styles) string {
	if stored == current {
		return s.Faint.Render("No changes since the last write.")
	}
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(stored, current)
	diffs := d.DiffMain(a, b, false)
	diffs = d.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	for _, df := range diffs {
		text := strings.TrimSuffix(df.Text, "\n")
		for _, l := range strings.Split(text, "\n") {
			switch df.Type {
			case dmp.DiffDelete:
				sb.WriteString(s.DiffDel.Render("- " + l))
			case dmp.DiffInsert:
				sb.WriteString(s.DiffAdd.Render("+ " + l))
			case dmp.DiffEqual:
				sb.WriteString(s.Faint.Render("  " + l))
			}
			sb.WriteString("\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// changeCounts returns the number of inserted and deleted runes between two
// texts.
func changeCounts(stored, current string) (ins, del int) {
	d := dmp.New()
	diffs := d.DiffMain(stored, current, false)
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			ins += len([]rune(df.Text))
		case dmp.DiffDelete:
			del += len([]rune(df.Text))
		}
	}
	return ins, del
}
