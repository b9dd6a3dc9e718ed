package cli

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/tbonnin/calepin/pkg/calepinage"
	"github.com/tbonnin/calepin/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatSVG} {
		if err := validateFormat(format); err != nil {
			t.Errorf("validateFormat(%q) = %v, want nil", format, err)
		}
	}
}

func TestValidateFormat_Unknown(t *testing.T) {
	err := validateFormat("yaml")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("validateFormat(%q) = %v, want INVALID_FORMAT", "yaml", err)
	}
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	w.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func laidOut(t *testing.T, deckLength, deckWidth int, lengths ...int) (calepinage.Calepinage, calepinage.PlankHeap) {
	t.Helper()
	heap, err := calepinage.FromLengths(lengths...)
	if err != nil {
		t.Fatal(err)
	}
	deck, err := calepinage.NewDeck(deckLength, deckWidth)
	if err != nil {
		t.Fatal(err)
	}
	layout, err := calepinage.Calepine(heap, deck)
	if err != nil {
		t.Fatal(err)
	}
	return layout, heap
}

func TestPrintLayout_WarnsOnLeftover(t *testing.T) {
	// The 12 covers row one alone; two of the five planks stay unused.
	layout, heap := laidOut(t, 12, 2, 10, 10, 2, 2, 12)

	out := captureStdout(t, func() { printLayout(layout, heap) })
	if !strings.Contains(out, "2 planks bought but not laid") {
		t.Errorf("printLayout() output %q, want leftover warning", out)
	}
}

func TestPrintLayout_NoWarningWhenExhausted(t *testing.T) {
	layout, heap := laidOut(t, 12, 2, 10, 10, 2, 2)

	out := captureStdout(t, func() { printLayout(layout, heap) })
	if strings.Contains(out, "not laid") {
		t.Errorf("printLayout() output %q, want no leftover warning", out)
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		input  string
		format string
		want   string
	}{
		{"deck.toml", "svg", "deck.svg"},
		{"plans/terrace.toml", "json", "plans/terrace.json"},
		{"noext", "svg", "noext.svg"},
	}
	for _, tt := range tests {
		if got := artifactPath(tt.input, tt.format); got != tt.want {
			t.Errorf("artifactPath(%q, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
		}
	}
}
