package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kcorpus/kcorpus/internal/config"
	"github.com/kcorpus/kcorpus/internal/provider"
	"github.com/kcorpus/kcorpus/internal/schema"
	"github.com/kcorpus/kcorpus/internal/store"
	"github.com/kcorpus/kcorpus/internal/synth"
)

// Record sources accepted by the generate command.
const (
	SourceKnowledge = "knowledge"
	SourceTree      = "tree"
	SourceAssisted  = "assisted"
	SourceAll       = "all"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	Source     string
	Tree       string
	Out        string
	Merge      bool
	Database   string
	ConfigPath string
	Count      int
}

// GenerateSummary reports what a generate run produced.
type GenerateSummary struct {
	Total      int                `json:"total"`
	ByTask     []store.TaskCount  `json:"by_task"`
	Difficulty []store.ValueCount `json:"by_difficulty,omitempty"`
	Files      []string           `json:"files"`
	RunID      string             `json:"run_id,omitempty"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate training records",
		Long:  "Synthesizes records from the built-in knowledge base, mines a C source tree, or both, and writes per-task JSONL files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", SourceKnowledge, "record source (knowledge|tree|assisted|all)")
	cmd.Flags().StringVar(&opts.Tree, "tree", "", "root of a C source tree to mine")
	cmd.Flags().StringVar(&opts.Out, "out", "", "output directory for JSONL files")
	cmd.Flags().BoolVar(&opts.Merge, "merge", false, "also write a merged train.jsonl")
	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite archive path")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	cmd.Flags().IntVar(&opts.Count, "count", 10, "record count requested from the assisted provider")

	return cmd
}

func runGenerate(cmd *cobra.Command, rootOpts *RootOptions, opts *GenerateOptions) error {
	switch opts.Source {
	case SourceKnowledge, SourceTree, SourceAssisted, SourceAll:
	default:
		return fmt.Errorf("invalid source %q: must be one of knowledge, tree, assisted, all", opts.Source)
	}

	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return NewExitError(ExitFailure, fmt.Errorf("loading config: %w", err))
		}
		cfg = loaded
	}
	// Flags set on the command line win over the config file.
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = opts.Out
	}
	if cmd.Flags().Changed("merge") {
		cfg.Merge = opts.Merge
	}
	if cmd.Flags().Changed("db") {
		cfg.Database = opts.Database
	}

	st := store.New()
	ctx := cmd.Context()

	if opts.Source == SourceKnowledge || opts.Source == SourceAll {
		sch := schema.Default()
		if err := sch.Validate(); err != nil {
			return NewExitError(ExitFailure, fmt.Errorf("validating knowledge base: %w", err))
		}
		recs, err := synth.New(sch).Generate()
		if err != nil {
			return NewExitError(ExitFailure, fmt.Errorf("synthesizing records: %w", err))
		}
		st.Add(recs...)
		slog.Info("knowledge records synthesized", "count", len(recs))
	}

	if opts.Source == SourceTree || opts.Source == SourceAll {
		if opts.Tree == "" {
			slog.Warn("no source tree given, skipping mining stage")
		} else {
			m := cfg.NewMiner()
			recs, err := m.ScanTree(opts.Tree)
			if err != nil {
				slog.Warn("mining stage skipped", "tree", opts.Tree, "error", err)
			} else {
				st.Add(recs...)
				slog.Info("source tree mined", "tree", opts.Tree, "count", len(recs))
			}
		}
	}

	if opts.Source == SourceAssisted || opts.Source == SourceAll {
		p := provider.Noop{}
		recs, err := p.Generate(ctx, opts.Count)
		if err != nil {
			return NewExitError(ExitFailure, fmt.Errorf("assisted generation: %w", err))
		}
		st.Add(recs...)
	}

	files, err := st.SaveByTask(cfg.OutputDir)
	if err != nil {
		return NewExitError(ExitFailure, fmt.Errorf("writing per-task files: %w", err))
	}
	if cfg.Merge {
		merged := filepath.Join(cfg.OutputDir, store.MergedFilename)
		if err := st.SaveMerged(merged); err != nil {
			return NewExitError(ExitFailure, fmt.Errorf("writing merged file: %w", err))
		}
		files = append(files, merged)
	}

	summary := GenerateSummary{
		Total:      st.Len(),
		ByTask:     st.CountsByTask(),
		Difficulty: st.CountsByMetadata("difficulty"),
		Files:      files,
	}

	if cfg.Database != "" {
		arch, err := store.OpenArchive(cfg.Database)
		if err != nil {
			return NewExitError(ExitFailure, fmt.Errorf("opening archive: %w", err))
		}
		defer arch.Close()
		runID, err := arch.BeginRun(ctx, opts.Source)
		if err != nil {
			return NewExitError(ExitFailure, fmt.Errorf("recording run: %w", err))
		}
		if err := arch.WriteRecords(ctx, runID, st.Records()); err != nil {
			return NewExitError(ExitFailure, fmt.Errorf("archiving records: %w", err))
		}
		summary.RunID = runID
		slog.Info("records archived", "db", cfg.Database, "run_id", runID)
	}

	formatter := NewOutputFormatter(rootOpts.Format, cmd.OutOrStdout())
	return formatter.PrintResult(summary, func(w io.Writer) error {
		return printGenerateSummary(w, summary)
	})
}

func printGenerateSummary(w io.Writer, s GenerateSummary) error {
	fmt.Fprintf(w, "生成 %d 条训练记录\n", s.Total)
	for _, tc := range s.ByTask {
		fmt.Fprintf(w, "  %-24s %d\n", tc.Task, tc.Count)
	}
	for _, vc := range s.Difficulty {
		fmt.Fprintf(w, "  difficulty=%-13s %d\n", vc.Value, vc.Count)
	}
	for _, f := range s.Files {
		fmt.Fprintf(w, "written: %s\n", f)
	}
	if s.RunID != "" {
		fmt.Fprintf(w, "run: %s\n", s.RunID)
	}
	return nil
}
