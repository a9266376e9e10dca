package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/open-formulieren/jsonlogic-infer/inferr"
	"github.com/open-formulieren/jsonlogic-infer/internal/log"
	"github.com/open-formulieren/jsonlogic-infer/jsonlogic"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const stdinArg = "-"

var cmdLogger = log.DefaultLogger.With("section", "cli.check")

type checkFlags struct {
	algorithm string
	format    string
	output    string
	logLevel  int
}

// NewCheckCmd returns the command inferring the type of JsonLogic rule files
func NewCheckCmd() *cobra.Command {
	flags := &checkFlags{}
	cmd := &cobra.Command{
		Use:   "check [file.json|file.yaml|-]...",
		Short: "Infer the type of JsonLogic rules and of the variables they read",
		Long: "Infer the type of each JsonLogic rule given, reading standard input when no file\n" +
			"or - is given. Exits with an error if any rule fails to type check.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, args)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&flags.algorithm, "algorithm", "a", string(jsonlogic.W), "inference algorithm, M or W")
	cmd.Flags().StringVarP(&flags.format, "format", "f", string(jsonlogic.FormatAuto), "rule encoding: auto, json or yaml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "auto", "output format: auto, text or json")
	cmd.Flags().IntVarP(&flags.logLevel, "log-level", "l", int(slog.LevelWarn), "log level")
	return cmd
}

// checked is the outcome of checking one rule
type checked struct {
	Source    string            `json:"source"`
	Type      string            `json:"type,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
	Error     *checkError       `json:"error,omitempty"`
}

type checkError struct {
	Code    inferr.ErrCode `json:"code,omitempty"`
	Message string         `json:"message"`
}

func runCheck(cmd *cobra.Command, flags *checkFlags, args []string) error {
	log.SetLevel(slog.Level(flags.logLevel))
	log.SetOutput(cmd.ErrOrStderr())

	algorithm := jsonlogic.Algorithm(strings.ToUpper(flags.algorithm))
	if algorithm != jsonlogic.M && algorithm != jsonlogic.W {
		return errors.Errorf("unknown algorithm %q, expected M or W", flags.algorithm)
	}
	out, err := outputFormat(flags.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{stdinArg}
	}

	var inferErrs *inferr.Errors
	failed := 0
	results := make([]checked, 0, len(args))
	for _, source := range args {
		result, err := checkSource(cmd.InOrStdin(), source, jsonlogic.Format(flags.format), algorithm)
		if err != nil {
			failed++
			result.Error = &checkError{Message: err.Error()}
			var inferErr inferr.InferError
			if errors.As(err, &inferErr) {
				inferErrs = inferErrs.With(inferErr)
				result.Error.Code = inferErr.Code()
				result.Error.Message = inferr.FormatWithCode(inferErr)
			}
		}
		results = append(results, result)
	}

	if err := out.write(cmd.OutOrStdout(), results); err != nil {
		return errors.Wrap(err, "could not write results")
	}
	if failed > 0 {
		cmdLogger.Debug("type errors", "errors", inferErrs)
		return errors.Errorf("%d of %d rules failed to type check", failed, len(args))
	}
	return nil
}

func checkSource(stdin io.Reader, source string, format jsonlogic.Format, algorithm jsonlogic.Algorithm) (checked, error) {
	result := checked{Source: source}

	in := stdin
	if source != stdinArg {
		f, err := os.Open(source)
		if err != nil {
			return result, errors.Wrap(err, "could not open rule")
		}
		defer f.Close()
		in = f
	}
	value, err := jsonlogic.Decode(in, format)
	if err != nil {
		return result, err
	}

	inferred, err := jsonlogic.TypeCheckWith(value, algorithm)
	if err != nil {
		return result, err
	}
	result.Type = inferred.Type.String()
	result.Variables = make(map[string]string, len(inferred.Variables))
	for name, t := range inferred.Variables {
		result.Variables[name] = t.String()
	}
	return result, nil
}

type output string

const (
	outputText output = "text"
	outputJSON output = "json"
)

// outputFormat resolves auto to text on terminals and to json otherwise
func outputFormat(flag string, w io.Writer) (output, error) {
	switch output(flag) {
	case outputText, outputJSON:
		return output(flag), nil
	case "auto":
		if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return outputText, nil
		}
		return outputJSON, nil
	}
	return "", errors.Errorf("unknown output format %q, expected auto, text or json", flag)
}

func (o output) write(w io.Writer, results []checked) error {
	if o == outputJSON {
		encoder := json.NewEncoder(w)
		for _, result := range results {
			if err := encoder.Encode(result); err != nil {
				return err
			}
		}
		return nil
	}

	sb := &strings.Builder{}
	for _, result := range results {
		if result.Error != nil {
			fmt.Fprintf(sb, "%s: %s\n", result.Source, result.Error.Message)
			continue
		}
		fmt.Fprintf(sb, "%s: %s\n", result.Source, result.Type)
		for _, name := range slices.Sorted(maps.Keys(result.Variables)) {
			fmt.Fprintf(sb, "  %s: %s\n", name, result.Variables[name])
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
