package handlers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/net2share/awgenc/internal/actions"
	"github.com/net2share/go-corelib/tui"
)

// TUIOutput implements OutputWriter with the tui styles. The tui.Print*
// helpers write to stdout, so messages are rendered here and written to w.
type TUIOutput struct {
	w io.Writer
}

// NewTUIOutput creates a TUI output writer on stderr, leaving stdout to
// command results.
func NewTUIOutput() *TUIOutput {
	return NewTUIOutputTo(os.Stderr)
}

// NewTUIOutputTo creates a TUI output writer on w.
func NewTUIOutputTo(w io.Writer) *TUIOutput {
	return &TUIOutput{w: w}
}

func (t *TUIOutput) Info(msg string) {
	fmt.Fprintln(t.w, tui.InfoStyle.Render("ℹ "+msg))
}

func (t *TUIOutput) Success(msg string) {
	fmt.Fprintln(t.w, tui.SuccessStyle.Render("✓ "+msg))
}

func (t *TUIOutput) Warning(msg string) {
	fmt.Fprintln(t.w, tui.WarnStyle.Render("⚠ "+msg))
}

func (t *TUIOutput) Error(msg string) {
	fmt.Fprintln(t.w, tui.ErrorStyle.Render("✗ "+msg))
}

func (t *TUIOutput) Box(title string, lines []string) {
	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, tui.TitleStyle.Render(title))
	fmt.Fprintln(t.w, tui.BoxStyle.Render(strings.Join(lines, "\n")))
}

func (t *TUIOutput) KV(key, value string) string {
	return tui.KV(key+": ", value)
}

var _ actions.OutputWriter = (*TUIOutput)(nil)
