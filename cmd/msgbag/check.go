package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"msgbag/internal/bagfmt"
	"msgbag/internal/driver"
	"msgbag/internal/rules"
)

var (
	checkRules    string
	checkFormat   string
	checkTemplate string
	checkJobs     int
	checkIndent   int
	checkOut      string
	checkFailFast bool
)

func init() {
	checkCmd.Flags().StringVar(&checkRules, "rules", "msgbag.toml", "ruleset file")
	checkCmd.Flags().StringVar(&checkFormat, "format", "pretty", "output format (pretty|json|msgpack)")
	checkCmd.Flags().StringVar(&checkTemplate, "template", "", "message template, e.g. ':key: :message'")
	checkCmd.Flags().IntVar(&checkJobs, "jobs", 0, "parallel file checks (0 = NumCPU)")
	checkCmd.Flags().IntVar(&checkIndent, "indent", 0, "JSON indent width")
	checkCmd.Flags().StringVar(&checkOut, "out", "", "write output to file instead of stdout")
	checkCmd.Flags().BoolVar(&checkFailFast, "fail-fast", false, "stop after the first file with messages")
}

var checkCmd = &cobra.Command{
	Use:   "check [files or directories...]",
	Short: "Validate JSON documents against a ruleset",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := rules.Load(checkRules)
		if err != nil {
			return err
		}
		files, err := driver.ExpandPaths(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no input files found in %v", args)
		}

		results, combined, err := driver.CheckFiles(cmd.Context(), rs, files, checkJobs, checkFailFast)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if checkOut != "" {
			f, err := os.Create(checkOut)
			if err != nil {
				return fmt.Errorf("failed to create %q: %w", checkOut, err)
			}
			defer f.Close()
			out = f
		}

		popts := bagfmt.PrettyOpts{
			Color:    useColor(cmd) && checkOut == "",
			Template: checkTemplate,
			Counts:   true,
		}

		switch checkFormat {
		case "pretty":
			for _, res := range results {
				if res.Bag.IsEmpty() {
					continue
				}
				fmt.Fprintf(out, "%s\n", res.Path)
				bagfmt.Pretty(out, res.Bag, popts)
			}
			if !quiet(cmd) {
				bagfmt.Summary(out, combined, popts)
			}
		case "json":
			jopts := bagfmt.JSONOpts{Indent: checkIndent, Wrap: true, Template: checkTemplate}
			fmt.Fprintln(out, bagfmt.JSON(combined, jopts))
		case "msgpack":
			data, err := bagfmt.EncodeMsgpack(combined)
			if err != nil {
				return err
			}
			if _, err := out.Write(data); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported format %q (must be pretty, json or msgpack)", checkFormat)
		}

		if combined.IsNotEmpty() {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return fmt.Errorf("%d validation messages", combined.Count())
		}
		return nil
	},
}
