package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-email-reply/lines"
)

func newDiffCmd(c *config) *cobra.Command {
	var color bool

	diffCmd := &cobra.Command{
		Use:   "diff [message]",
		Short: "Show the lines that were stripped from the message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, e, err := c.read(cmd, args)
			if err != nil {
				return err
			}

			diffs := lineDiff(lines.JoinNormalized(lines.Split(body)), e.VisibleText())
			if color {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), diffmatchpatch.New().DiffPrettyText(diffs))
				return err
			}

			return writeDiff(cmd.OutOrStdout(), diffs)
		},
	}

	diffCmd.Flags().BoolVar(&color, "color", false, "print the diff with terminal colors")

	return diffCmd
}

// lineDiff diffs two texts a line at a time.
func lineDiff(from, to string) []diffmatchpatch.Diff {
	if from != "" && !strings.HasSuffix(from, "\n") {
		from += "\n"
	}
	if to != "" {
		to += "\n"
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lineArray)
}

// writeDiff writes the diffs with each line prefixed by "-" when it was
// stripped, "+" when it was added, or a space when it was kept.
func writeDiff(w io.Writer, diffs []diffmatchpatch.Diff) error {
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			if !strings.HasSuffix(l, "\n") {
				l += "\n"
			}
			if _, err := io.WriteString(w, prefix+l); err != nil {
				return fmt.Errorf("unable to write diff: %w", err)
			}
		}
	}
	return nil
}
