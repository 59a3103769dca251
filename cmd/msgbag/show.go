package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"msgbag/internal/bag"
	"msgbag/internal/bagfmt"
	"msgbag/internal/ui"
)

var (
	showFilter      string
	showTemplate    string
	showFormat      string
	showIndent      int
	showInteractive bool
)

func init() {
	showCmd.Flags().StringVar(&showFilter, "filter", "", "wildcard key pattern, e.g. 'items.*'")
	showCmd.Flags().StringVar(&showTemplate, "template", "", "message template, e.g. ':key: :message'")
	showCmd.Flags().StringVar(&showFormat, "format", "pretty", "output format (pretty|json)")
	showCmd.Flags().IntVar(&showIndent, "indent", 0, "JSON indent width")
	showCmd.Flags().BoolVarP(&showInteractive, "interactive", "i", false, "browse the bag in a TUI")
}

var showCmd = &cobra.Command{
	Use:   "show <bag file>",
	Short: "Render a previously saved message bag",
	Long:  "Reads a bag from JSON ({\"key\": [...]} or {\"errors\": {...}}) or from a .mp msgpack payload and renders it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBag(args[0])
		if err != nil {
			return err
		}

		if showFilter != "" {
			b = filterBag(b, showFilter)
		}

		if showInteractive {
			return ui.Browse(b, showTemplate)
		}

		out := cmd.OutOrStdout()
		switch showFormat {
		case "pretty":
			opts := bagfmt.PrettyOpts{Color: useColor(cmd), Template: showTemplate, Counts: true}
			bagfmt.Pretty(out, b, opts)
			if !quiet(cmd) {
				bagfmt.Summary(out, b, opts)
			}
		case "json":
			fmt.Fprintln(out, bagfmt.JSON(b, bagfmt.JSONOpts{Indent: showIndent, Template: showTemplate}))
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", showFormat)
		}
		return nil
	},
}

func loadBag(path string) (*bag.Bag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	if strings.HasSuffix(path, ".mp") {
		return bagfmt.DecodeMsgpack(data)
	}
	return bagfmt.ParseJSON(data)
}

// filterBag keeps only the keys matching pattern, preserving stored order
// and raw (unformatted) messages.
func filterBag(b *bag.Bag, pattern string) *bag.Bag {
	out := bag.New()
	out.SetFormat(b.Format())
	raw := b.ToMap()
	for _, key := range b.Keys() {
		if bag.MatchKey(pattern, key) {
			out.MergeMap(map[string][]string{key: raw[key]})
		}
	}
	return out
}
