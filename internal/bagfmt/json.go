package bagfmt

import (
	"strings"

	"msgbag/internal/bag"
)

// JSON renders a bag as JSON text. The object member order is the bag's key
// insertion order (the bag's own encoder guarantees that). With opts.Wrap the
// object is nested under an "errors" member, the shape validation consumers
// expect. opts.Max caps the number of messages in the output without
// touching the bag itself.
func JSON(b *bag.Bag, opts JSONOpts) string {
	view := b
	if opts.Template != "" || opts.Max > 0 {
		view = project(b, opts)
	}
	body := view.ToJSON(opts.Indent)
	if !opts.Wrap {
		return body
	}
	if opts.Indent <= 0 {
		return `{"errors":` + body + `}`
	}
	pad := strings.Repeat(" ", opts.Indent)
	// Re-indent the nested object one level deeper.
	body = strings.ReplaceAll(body, "\n", "\n"+pad)
	return "{\n" + pad + `"errors": ` + body + "\n}"
}

// project builds a detached bag reflecting the template and cap options.
func project(b *bag.Bag, opts JSONOpts) *bag.Bag {
	out := bag.New()
	total := 0
	for _, key := range b.Keys() {
		for _, msg := range b.Get(key, opts.Template).Messages {
			if opts.Max > 0 && total >= opts.Max {
				return out
			}
			// Merge-style append: formatting may collapse distinct raw
			// messages into equal strings and all of them must survive.
			out.MergeMap(map[string][]string{key: {msg}})
			total++
		}
	}
	return out
}
