package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	reply "github.com/zostay/go-email-reply"
	"github.com/zostay/go-email-reply/identity"
)

// ErrNoInput is returned when no file is named and nothing arrives on standard
// input.
var ErrNoInput = errors.New("no message given: name a file or pipe one to standard input")

// readInput returns the message named by the first argument or, if there are
// no arguments, the message read from standard input.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("unable to read message %q: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("unable to read standard input: %w", err)
	}

	if len(data) == 0 {
		return "", ErrNoInput
	}

	return string(data), nil
}

// read loads the message and parses it with the sender given by the flags.
func (c *config) read(cmd *cobra.Command, args []string) (string, *reply.Email, error) {
	body, err := readInput(cmd, args)
	if err != nil {
		return "", nil, err
	}

	var opts []reply.ReadOption
	if c.sender != "" {
		id := identity.Parse(c.sender)
		if id.IsZero() {
			c.logger.Warn("ignoring sender that could not be parsed", "sender", c.sender)
		} else {
			c.logger.Debug("parsing with sender", "name", id.Name, "raw_name", id.RawName, "address", id.Address)
		}
		opts = append(opts, reply.WithSender(c.sender))
	}

	e := reply.Read(body, opts...)
	for i, f := range e.Fragments() {
		c.logger.Debug("fragment",
			"index", i,
			"quoted", f.IsQuoted(),
			"signature", f.IsSignature(),
			"hidden", f.IsHidden(),
			"lines", f.Len(),
		)
	}

	return body, e, nil
}
