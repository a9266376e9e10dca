package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/open-formulieren/jsonlogic-infer/jsonlogic"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewBuiltinsCmd returns the command listing the type of every supported operator
func NewBuiltinsCmd() *cobra.Command {
	var outputFlag string
	cmd := &cobra.Command{
		Use:   "builtins",
		Short: "List the JsonLogic operators and their type signatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := outputFormat(outputFlag, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			signatures := make(map[string]string)
			sb := &strings.Builder{}
			for name, signature := range jsonlogic.DefaultContext().All() {
				signatures[name] = signature.String()
				fmt.Fprintf(sb, "%-14s %s\n", name, signature)
			}
			if out == outputJSON {
				return errors.Wrap(json.NewEncoder(cmd.OutOrStdout()).Encode(signatures), "could not write builtins")
			}
			_, err = cmd.OutOrStdout().Write([]byte(sb.String()))
			return err
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "auto", "output format: auto, text or json")
	return cmd
}
