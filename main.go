package main

import (
	"os"

	"github.com/open-formulieren/jsonlogic-infer/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "jlinfer [subcommand]",
	Short:        "jlinfer infers the types of JsonLogic rules",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.NewCheckCmd())
	rootCmd.AddCommand(cmd.NewBuiltinsCmd())
}
