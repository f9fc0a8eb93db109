package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTableAlignsWideText(t *testing.T) {
	out := RenderTable(Table{
		Headers:    []string{"Category", "Amount"},
		Rows:       [][]string{{"খাবার", "500 ৳"}, {"Rent", "12,000 ৳"}},
		RightAlign: []int{1},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), out)
	}
	want := lipgloss.Width(lines[0])
	for i, l := range lines {
		if got := lipgloss.Width(l); got != want {
			t.Errorf("line %d width = %d, want %d: %q", i, got, want, l)
		}
	}
	if !strings.Contains(out, "   500 ৳") {
		t.Errorf("amount column not right-aligned:\n%s", out)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("RenderTable(empty) = %q, want empty", got)
	}
}

func TestRenderProgressBarClamps(t *testing.T) {
	full := RenderProgressBar(140, true, 10)
	if !strings.Contains(full, "100.0%") {
		t.Errorf("over-limit bar = %q, want 100.0%%", full)
	}
	if got := lipgloss.Width(RenderProgressBar(30, false, 10)); got != 17 {
		t.Errorf("bar width = %d, want 17", got)
	}
	if RenderProgressBar(50, false, 0) != "" {
		t.Error("zero-width bar should be empty")
	}
}
