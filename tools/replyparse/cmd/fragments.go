package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/zostay/go-email-reply/fragment"
)

const previewWidth = 50

func newFragmentsCmd(c *config) *cobra.Command {
	return &cobra.Command{
		Use:   "fragments [message]",
		Short: "List the fragments of the message and how each was classified",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, e, err := c.read(cmd, args)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "#\tFLAGS\tLINES\tPREVIEW")
			for i, f := range e.Fragments() {
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", i, flagString(f), f.Len(), preview(f))
			}

			return tw.Flush()
		},
	}
}

// flagString renders the classification of f as three letters: Q for
// quoted, S for signature, H for hidden, or a dash for each that is unset.
func flagString(f *fragment.Fragment) string {
	fs := []byte("---")
	if f.IsQuoted() {
		fs[0] = 'Q'
	}
	if f.IsSignature() {
		fs[1] = 'S'
	}
	if f.IsHidden() {
		fs[2] = 'H'
	}
	return string(fs)
}

// preview returns the first non-blank line of the fragment, shortened to fit
// on one row.
func preview(f *fragment.Fragment) string {
	for _, l := range f.Lines() {
		if l.IsBlank() {
			continue
		}

		p := strings.TrimSpace(l.Text)
		if utf8.RuneCountInString(p) > previewWidth {
			p = string([]rune(p)[:previewWidth-3]) + "..."
		}
		return p
	}
	return ""
}
