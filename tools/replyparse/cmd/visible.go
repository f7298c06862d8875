package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVisibleCmd(c *config) *cobra.Command {
	return &cobra.Command{
		Use:   "visible [message]",
		Short: "Print the reply without quoted text and signatures",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, e, err := c.read(cmd, args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), e.VisibleText())
			return err
		},
	}
}

func newNewCmd(c *config) *cobra.Command {
	return &cobra.Command{
		Use:   "new [message]",
		Short: "Print everything written above the first quotation, signature included",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, e, err := c.read(cmd, args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), e.NewContent())
			return err
		},
	}
}
