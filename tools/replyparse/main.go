package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-email-reply/tools/replyparse/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
