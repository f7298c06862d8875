package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// config holds the values of the persistent flags shared by every command.
type config struct {
	sender  string
	verbose bool
	logger  *slog.Logger
}

// NewRootCmd builds the replyparse command tree.
func NewRootCmd() *cobra.Command {
	c := &config{logger: newLogger(io.Discard, false)}

	rootCmd := &cobra.Command{
		Use:          "replyparse",
		Short:        "Tools for splitting email replies into new content, quotes, and signatures",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.logger = newLogger(cmd.ErrOrStderr(), c.verbose)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&c.sender, "sender", "s", "", `the author of the message, as "Name <address>"`)
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log how the message was split")

	rootCmd.AddCommand(newVisibleCmd(c))
	rootCmd.AddCommand(newNewCmd(c))
	rootCmd.AddCommand(newFragmentsCmd(c))
	rootCmd.AddCommand(newDiffCmd(c))

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// newLogger returns a text logger writing to w at Warn level, or at Debug
// level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
