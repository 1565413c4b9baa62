package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossy/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, 'X', core.ColorRed)
	s.DrawTextColored(0, 1, "road", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, want := range []string{"ab", "X", "road"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q lacks %q", out, want)
		}
	}
}

func TestRenderFrameAppendsFooter(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawText(0, 0, "....")

	out := RenderFrame(s, "help")
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), out)
	}
	if !strings.Contains(lines[1], "help") {
		t.Errorf("footer line = %q", lines[1])
	}
}
