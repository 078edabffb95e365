package statusbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"notepad/internal/stats"
	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
)

var plain = util.NewStyles(state.Light, true)

func TestViewCounters(t *testing.T) {
	out := View(stats.Compute("a  b\tc\nd"), "", "", 0, plain)
	for _, want := range []string{"Words: 4", "Characters: 8", "Lines: 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestViewNoticeAndHint(t *testing.T) {
	out := View(stats.Stats{}, "Copied", "F1 keys", 80, plain)
	if !strings.Contains(out, "Copied") {
		t.Fatalf("missing notice: %q", out)
	}
	if !strings.HasSuffix(out, "F1 keys ") {
		t.Fatalf("hint should be right aligned: %q", out)
	}
	if w := lipgloss.Width(out); w != 80 {
		t.Fatalf("expected width 80, got %d", w)
	}
	// too narrow for the hint
	if narrow := View(stats.Stats{}, "", "F1 keys", 10, plain); strings.Contains(narrow, "F1") {
		t.Fatalf("hint should be dropped when it does not fit: %q", narrow)
	}
}
