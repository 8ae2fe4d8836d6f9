package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcorpus/kcorpus/internal/record"
)

func testRecords() []record.Record {
	return []record.Record{
		{
			Task:        record.TaskCallbackTiming,
			Instruction: "first",
			Output:      "out1",
			Metadata:    map[string]any{"framework": "usb_driver"},
		},
		{
			Task:        record.TaskFunctionPointerTarget,
			Instruction: "second",
			Input:       "code",
			Output:      "out2",
		},
		{
			Task:        record.TaskCallbackTiming,
			Instruction: "third",
			Output:      "out3",
		},
		{
			Task:        record.TaskReasoning,
			Instruction: "fourth",
			Output:      "out4",
			Metadata:    map[string]any{"difficulty": "medium"},
		},
		{
			Task:        record.TaskReasoning,
			Instruction: "fifth",
			Output:      "out5",
			Metadata:    map[string]any{"difficulty": "hard"},
		},
	}
}

func TestStoreAddPreservesOrder(t *testing.T) {
	s := New()
	s.Add(testRecords()...)

	require.Equal(t, 5, s.Len())
	got := s.Records()
	assert.Equal(t, "first", got[0].Instruction)
	assert.Equal(t, "fifth", got[4].Instruction)
}

func TestCountsByTask(t *testing.T) {
	s := New()
	s.Add(testRecords()...)

	counts := s.CountsByTask()
	require.Len(t, counts, 3)
	// Sorted by task tag.
	assert.Equal(t, TaskCount{Task: record.TaskCallbackTiming, Count: 2}, counts[0])
	assert.Equal(t, TaskCount{Task: record.TaskFunctionPointerTarget, Count: 1}, counts[1])
	assert.Equal(t, TaskCount{Task: record.TaskReasoning, Count: 2}, counts[2])
}

func TestCountsByMetadata(t *testing.T) {
	s := New()
	s.Add(testRecords()...)

	counts := s.CountsByMetadata("difficulty")
	require.Len(t, counts, 2)
	assert.Equal(t, ValueCount{Value: "hard", Count: 1}, counts[0])
	assert.Equal(t, ValueCount{Value: "medium", Count: 1}, counts[1])

	assert.Empty(t, s.CountsByMetadata("no_such_key"))
}

func TestSaveMerged(t *testing.T) {
	s := New()
	s.Add(testRecords()...)

	path := filepath.Join(t.TempDir(), "out", MergedFilename)
	require.NoError(t, s.SaveMerged(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 5)

	// Insertion order survives the merge, and every line round-trips.
	first, err := record.UnmarshalLine([]byte(lines[0]))
	require.NoError(t, err)
	assert.Equal(t, "first", first.Instruction)
	last, err := record.UnmarshalLine([]byte(lines[4]))
	require.NoError(t, err)
	assert.Equal(t, "fifth", last.Instruction)
}

func TestSaveMergedDeterministic(t *testing.T) {
	s := New()
	s.Add(testRecords()...)

	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.jsonl")
	p2 := filepath.Join(dir, "b.jsonl")
	require.NoError(t, s.SaveMerged(p1))
	require.NoError(t, s.SaveMerged(p2))

	d1, err := os.ReadFile(p1)
	require.NoError(t, err)
	d2, err := os.ReadFile(p2)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestSaveByTask(t *testing.T) {
	s := New()
	s.Add(testRecords()...)

	dir := t.TempDir()
	paths, err := s.SaveByTask(dir)
	require.NoError(t, err)

	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "callback_timing.jsonl"), paths[0])
	assert.Equal(t, filepath.Join(dir, "function_pointer_target.jsonl"), paths[1])
	assert.Equal(t, filepath.Join(dir, "reasoning.jsonl"), paths[2])

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	r, err := record.UnmarshalLine([]byte(lines[0]))
	require.NoError(t, err)
	assert.Equal(t, "first", r.Instruction)
	r, err = record.UnmarshalLine([]byte(lines[1]))
	require.NoError(t, err)
	assert.Equal(t, "third", r.Instruction)
}

func TestSaveByTaskEmptyStore(t *testing.T) {
	paths, err := New().SaveByTask(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSaveByTaskInvalidRecord(t *testing.T) {
	s := New()
	s.Add(record.Record{Task: "bogus", Instruction: "x", Output: "y"})

	_, err := s.SaveByTask(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown task")
}
