package bagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"msgbag/internal/bag"
)

// Pretty renders a bag grouped by key:
//
//	<key> (<count>):
//	  - <message>
//
// Keys follow bag insertion order. Messages go through the bag's format
// pipeline (opts.Template overrides the bag default). Lines are truncated to
// opts.Width display cells when set.
func Pretty(w io.Writer, b *bag.Bag, opts PrettyOpts) {
	if b.IsEmpty() {
		return
	}

	keyColor := color.New(color.FgYellow, color.Bold)
	dashColor := color.New(color.FgRed)
	if !opts.Color {
		keyColor.DisableColor()
		dashColor.DisableColor()
	}

	for _, key := range b.Keys() {
		msgs := b.Get(key, opts.Template).Messages
		header := key
		if opts.Counts {
			header = fmt.Sprintf("%s (%d)", key, len(msgs))
		}
		fmt.Fprintf(w, "%s:\n", keyColor.Sprint(clip(header, opts.Width)))
		for _, msg := range msgs {
			line := clip(msg, opts.Width-4)
			fmt.Fprintf(w, "  %s %s\n", dashColor.Sprint("-"), line)
		}
	}
}

// Summary writes a one-line total, matching the CLI's quiet output.
func Summary(w io.Writer, b *bag.Bag, opts PrettyOpts) {
	c := color.New(color.FgRed, color.Bold)
	if !opts.Color {
		c.DisableColor()
	}
	if b.IsEmpty() {
		ok := color.New(color.FgGreen)
		if !opts.Color {
			ok.DisableColor()
		}
		fmt.Fprintln(w, ok.Sprint("no messages"))
		return
	}
	fmt.Fprintf(w, "%s across %d keys\n", c.Sprintf("%d messages", b.Count()), len(b.Keys()))
}

// clip truncates s to width display cells, accounting for wide runes.
func clip(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
