// Package miner extracts field-to-function bindings from raw C source
// text by recognizing operations-table structure literals.
//
// The miner never parses or type-checks the source; it is a tolerant
// text pass. Failures are isolated at file granularity: an unreadable
// or undecodable file is skipped with a warning and the scan continues.
package miner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/kcorpus/kcorpus/internal/record"
	"github.com/kcorpus/kcorpus/internal/render"
)

// Defaults for the scan limits and the internal-identifier filter.
const (
	// DefaultFilterPrefix discards targets named with the kernel's
	// double-underscore internal convention.
	DefaultFilterPrefix = "__"

	// DefaultMaxFiles caps how many source files one scan visits.
	DefaultMaxFiles = 100
)

// Binding is one extracted (structure instance, field, target function)
// triple. Snippet carries the literal's full matched text for use as
// the record input.
type Binding struct {
	Variable   string
	StructType string
	Field      string
	Target     string
	Snippet    string
	File       string
}

// Record converts the binding into its field-target training record.
func (b Binding) Record() record.Record {
	meta := map[string]any{"struct": b.StructType}
	if b.File != "" {
		meta["file"] = b.File
	}
	return record.Record{
		Task:        record.TaskFunctionPointerTarget,
		Instruction: fmt.Sprintf("分析 %s.%s 指向哪个函数", b.Variable, b.Field),
		Input:       b.Snippet,
		Output:      render.MinedFieldTarget(b.Variable, b.Field, b.Target),
		Metadata:    meta,
	}
}

// Miner scans source text for operations-table literals.
type Miner struct {
	// FilterPrefix discards any binding whose target identifier starts
	// with this prefix. Empty disables filtering.
	FilterPrefix string

	// MaxFiles caps how many files ScanTree reads per invocation.
	MaxFiles int

	logger *slog.Logger
}

// New returns a miner with the default filter and file cap.
func New() *Miner {
	return &Miner{
		FilterPrefix: DefaultFilterPrefix,
		MaxFiles:     DefaultMaxFiles,
		logger:       slog.Default(),
	}
}

// MineSource extracts bindings from one file's source text. Bindings
// are returned in source order (literal order, then field order within
// the literal), which is the per-file ordering contract.
func (m *Miner) MineSource(path, content string) []Binding {
	var bindings []Binding
	for _, lit := range findLiterals(content) {
		for _, fa := range topLevelFields(lit.Body) {
			if m.FilterPrefix != "" && strings.HasPrefix(fa.Target, m.FilterPrefix) {
				continue
			}
			bindings = append(bindings, Binding{
				Variable:   lit.Variable,
				StructType: lit.StructType,
				Field:      fa.Field,
				Target:     fa.Target,
				Snippet:    lit.Text,
				File:       path,
			})
		}
	}
	return bindings
}

// ScanTree walks the source tree rooted at root, mines every .c and .h
// file up to the file cap, and returns one record per surviving
// binding. Per-file failures are logged and skipped; only a missing or
// unwalkable root is an error.
func (m *Miner) ScanTree(root string) ([]record.Record, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("source tree %s: %w", root, err)
	}

	paths, err := m.collectFiles(root)
	if err != nil {
		return nil, err
	}

	var records []record.Record
	for _, path := range paths {
		content, err := m.readSource(path)
		if err != nil {
			m.logger.Warn("skipping source file", "path", path, "error", err)
			continue
		}
		for _, b := range m.MineSource(path, content) {
			records = append(records, b.Record())
		}
	}
	return records, nil
}

// collectFiles gathers candidate source files in lexical walk order,
// bounded by MaxFiles.
func (m *Miner) collectFiles(root string) ([]string, error) {
	limit := m.MaxFiles
	if limit <= 0 {
		limit = DefaultMaxFiles
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory entry: warn and keep walking.
			m.logger.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".c", ".h":
		default:
			return nil
		}
		if len(paths) >= limit {
			return filepath.SkipAll
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return paths, nil
}

// readSource reads one file and rejects content that is not valid
// UTF-8 text.
func (m *Miner) readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("not valid UTF-8")
	}
	return string(data), nil
}
