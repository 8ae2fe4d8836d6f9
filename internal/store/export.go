package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kcorpus/kcorpus/internal/record"
)

// MergedFilename is the default name of the merged export.
const MergedFilename = "train.jsonl"

// SaveMerged writes all records as one line-delimited stream to path,
// in insertion order. Each line is the record's canonical JSON, so
// repeated exports of the same store are byte-identical.
func (s *Store) SaveMerged(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var buf bytes.Buffer
	for _, r := range s.records {
		line, err := r.MarshalLine()
		if err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// SaveByTask writes one line-delimited file per task tag into dir,
// named <task>.jsonl. Within each file, records keep insertion order.
// Returns the written file paths sorted by task tag.
func (s *Store) SaveByTask(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	buffers := map[record.Task]*bytes.Buffer{}
	for _, r := range s.records {
		line, err := r.MarshalLine()
		if err != nil {
			return nil, fmt.Errorf("export by task: %w", err)
		}
		buf, ok := buffers[r.Task]
		if !ok {
			buf = &bytes.Buffer{}
			buffers[r.Task] = buf
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	var paths []string
	for _, tc := range s.CountsByTask() {
		path := filepath.Join(dir, string(tc.Task)+".jsonl")
		if err := os.WriteFile(path, buffers[tc.Task].Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("export %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
