package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/cobra"

	"github.com/kcorpus/kcorpus/internal/record"
)

// recordSchema constrains one exported JSONL line. Instruction and
// output must be non-empty; input may be blank for pure-knowledge
// questions; metadata keys are free-form strings.
const recordSchema = `
#Record: {
	instruction: string & !=""
	input:       string
	output:      string & !=""
	metadata?: {[string]: _}
}
`

// ValidationError describes one invalid line in a JSONL file.
type ValidationError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ValidationResult holds validation results for one file.
type ValidationResult struct {
	File   string            `json:"file"`
	Lines  int               `json:"lines"`
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file.jsonl>",
		Short: "Validate an exported JSONL file",
		Long: `Validate every line of an exported JSONL file against the record schema.

Each line must be a well-formed record object with non-empty instruction
and output fields. Reports all invalid lines rather than stopping at the
first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootOpts, args[0])
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, rootOpts *RootOptions, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return NewExitError(ExitFailure, fmt.Errorf("opening %s: %w", path, err))
	}
	defer f.Close()

	cuectx := cuecontext.New()
	schemaVal := cuectx.CompileString(recordSchema)
	if err := schemaVal.Err(); err != nil {
		return NewExitError(ExitFailure, fmt.Errorf("compiling record schema: %w", err))
	}
	recordDef := schemaVal.LookupPath(cue.ParsePath("#Record"))

	result := ValidationResult{File: path, Valid: true}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			result.Errors = append(result.Errors, ValidationError{
				Line:    lineNo,
				Message: "empty line",
			})
			continue
		}
		result.Lines++
		if msg := checkLine(cuectx, recordDef, line); msg != "" {
			result.Errors = append(result.Errors, ValidationError{Line: lineNo, Message: msg})
		}
	}
	if err := scanner.Err(); err != nil {
		return NewExitError(ExitFailure, fmt.Errorf("reading %s: %w", path, err))
	}
	result.Valid = len(result.Errors) == 0

	formatter := NewOutputFormatter(rootOpts.Format, cmd.OutOrStdout())
	if err := formatter.PrintResult(result, func(w io.Writer) error {
		return printValidationResult(w, result)
	}); err != nil {
		return err
	}
	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Errorf("%s: %d invalid line(s)", path, len(result.Errors)))
	}
	return nil
}

// checkLine validates one JSONL line twice: first as a parseable record,
// then against the CUE schema. JSON is a subset of CUE, so the line can
// be compiled directly and unified with the record definition.
func checkLine(cuectx *cue.Context, recordDef cue.Value, line []byte) string {
	if _, err := record.UnmarshalLine(line); err != nil {
		return err.Error()
	}
	lineVal := cuectx.CompileBytes(line)
	if err := lineVal.Err(); err != nil {
		return fmt.Sprintf("parsing line: %v", err)
	}
	unified := recordDef.Unify(lineVal)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return err.Error()
	}
	return ""
}

func printValidationResult(w io.Writer, r ValidationResult) error {
	if r.Valid {
		fmt.Fprintf(w, "✓ %s: %d 条记录有效\n", r.File, r.Lines)
		return nil
	}
	fmt.Fprintf(w, "✗ %s: %d 条记录，%d 处错误\n", r.File, r.Lines, len(r.Errors))
	for _, e := range r.Errors {
		fmt.Fprintf(w, "  line %d: %s\n", e.Line, e.Message)
	}
	return nil
}
