// Package record defines the training record wire format shared by all
// producers, and its canonical line serialization.
package record

import (
	"encoding/json"
	"fmt"
)

// Task categorizes a training record. The task tag selects the partition
// file during export but is never part of the wire format itself.
type Task string

const (
	// TaskCallbackTiming asks when a framework callback fires.
	TaskCallbackTiming Task = "callback_timing"

	// TaskFunctionPointerTarget asks which function a struct field points to.
	TaskFunctionPointerTarget Task = "function_pointer_target"

	// TaskAsyncPattern asks to identify an async mechanism and its flow.
	TaskAsyncPattern Task = "async_pattern"

	// TaskCallChain asks for the kernel call chain of an operation.
	TaskCallChain Task = "call_chain"

	// TaskSyncMechanism asks about a synchronization primitive.
	TaskSyncMechanism Task = "sync_mechanism"

	// TaskCompositeScenario covers hand-authored multi-phase narratives.
	TaskCompositeScenario Task = "composite_scenario"

	// TaskReasoning covers curated samples with an explicit reasoning section.
	TaskReasoning Task = "reasoning"
)

// ValidTasks defines the closed set of task tags.
var ValidTasks = map[Task]bool{
	TaskCallbackTiming:        true,
	TaskFunctionPointerTarget: true,
	TaskAsyncPattern:          true,
	TaskCallChain:             true,
	TaskSyncMechanism:         true,
	TaskCompositeScenario:     true,
	TaskReasoning:             true,
}

// Record is the unit of output. Instruction and Output are always
// non-empty; Input may be empty for facts with no natural code
// illustration. Records are immutable once produced.
type Record struct {
	Task        Task
	Instruction string
	Input       string
	Output      string
	Metadata    map[string]any
}

// Validate checks the record-level invariants.
func (r Record) Validate() error {
	if !ValidTasks[r.Task] {
		return fmt.Errorf("unknown task %q", r.Task)
	}
	if r.Instruction == "" {
		return fmt.Errorf("record has empty instruction")
	}
	if r.Output == "" {
		return fmt.Errorf("record has empty output")
	}
	return nil
}

// MarshalLine serializes the record to one canonical JSON line (without
// the trailing newline). The wire format carries exactly the keys
// instruction, input, output, and metadata (when present). Canonical
// serialization makes repeated exports byte-identical.
func (r Record) MarshalLine() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	obj := map[string]any{
		"instruction": r.Instruction,
		"input":       r.Input,
		"output":      r.Output,
	}
	if len(r.Metadata) > 0 {
		obj["metadata"] = r.Metadata
	}
	data, err := MarshalCanonical(obj)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return data, nil
}

// wireRecord mirrors the on-disk shape for decoding.
type wireRecord struct {
	Instruction string         `json:"instruction"`
	Input       string         `json:"input"`
	Output      string         `json:"output"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// UnmarshalLine parses one exported line back into a Record. The task
// tag is not on the wire; callers that need it recover it from the
// partition file name.
func UnmarshalLine(data []byte) (Record, error) {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return Record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	if w.Instruction == "" {
		return Record{}, fmt.Errorf("unmarshal record: empty instruction")
	}
	if w.Output == "" {
		return Record{}, fmt.Errorf("unmarshal record: empty output")
	}
	return Record{
		Instruction: w.Instruction,
		Input:       w.Input,
		Output:      w.Output,
		Metadata:    w.Metadata,
	}, nil
}
