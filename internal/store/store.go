// Package store accumulates training records from all producers and
// serializes them: line-delimited export files, and an optional SQLite
// archive for provenance queries.
package store

import (
	"sort"

	"github.com/kcorpus/kcorpus/internal/record"
)

// Store is the in-memory sink records flow into. Producers append;
// nothing mutates a record after Add. Order of addition is preserved
// through export.
type Store struct {
	records []record.Record
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Add appends records to the store.
func (s *Store) Add(recs ...record.Record) {
	s.records = append(s.records, recs...)
}

// Len returns the number of accumulated records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns the accumulated records in insertion order. The
// returned slice is shared; callers must not modify it.
func (s *Store) Records() []record.Record {
	return s.records
}

// TaskCount pairs a task tag with its record count.
type TaskCount struct {
	Task  record.Task `json:"task"`
	Count int         `json:"count"`
}

// CountsByTask returns per-task counts sorted by task tag, for stable
// summary output.
func (s *Store) CountsByTask() []TaskCount {
	counts := map[record.Task]int{}
	for _, r := range s.records {
		counts[r.Task]++
	}
	out := make([]TaskCount, 0, len(counts))
	for task, n := range counts {
		out = append(out, TaskCount{Task: task, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Task < out[j].Task })
	return out
}

// CountsByMetadata returns counts grouped by the string value of the
// given metadata key, sorted by value. Records without the key are
// omitted. Used for the per-difficulty summary of curated samples.
func (s *Store) CountsByMetadata(key string) []ValueCount {
	counts := map[string]int{}
	for _, r := range s.records {
		if v, ok := r.Metadata[key].(string); ok && v != "" {
			counts[v]++
		}
	}
	out := make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, ValueCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// ValueCount pairs a metadata value with its record count.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}
