package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"notepad/internal/tui/util"
)

// Section is a titled group of key bindings.
type Section struct {
	Title string
	Keys  []key.Binding
}

// Keys returns grouped key help. Disabled bindings are skipped.
func Keys(sections []Section, s util.Styles) string {
	var b strings.Builder
	b.WriteString(s.DialogTitle.Render("Keys"))
	b.WriteString("\n")
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.Title)
		for _, k := range sec.Keys {
			if !k.Enabled() {
				continue
			}
			h := k.Help()
			fmt.Fprintf(&b, "  %-8s %s\n", h.Key, s.Faint.Render(h.Desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(s.Faint.Render("esc: close"))
	return b.String()
}

// About is the about dialog body.
func About(version string, s util.Styles) string {
	var b strings.Builder
	b.WriteString(s.DialogTitle.Render("About Notepad"))
	b.WriteString("\n\n")
	b.WriteString("A simple, fast, and reliable terminal text editor.\n")
	fmt.Fprintf(&b, "Version %s\n\n", version)
	b.WriteString(s.Faint.Render("esc: close"))
	return b.String()
}
