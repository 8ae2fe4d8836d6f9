package record

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	return Record{
		Task:        TaskFunctionPointerTarget,
		Instruction: "分析 demo_ops 结构体中 .read 字段指向哪个函数",
		Input:       "static struct demo_ops cfg = {\n\t.read = demo_read,\n};",
		Output:      "cfg.read 指向 demo_read 函数。\n\n这是通过结构体初始化 .read = demo_read 赋值的。",
		Metadata:    map[string]any{"struct": "demo_ops", "file": "demo.c"},
	}
}

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Record)
		wantErr string
	}{
		{"valid", func(r *Record) {}, ""},
		{"unknown task", func(r *Record) { r.Task = "nonsense" }, "unknown task"},
		{"empty task", func(r *Record) { r.Task = "" }, "unknown task"},
		{"empty instruction", func(r *Record) { r.Instruction = "" }, "empty instruction"},
		{"empty output", func(r *Record) { r.Output = "" }, "empty output"},
		{"empty input is fine", func(r *Record) { r.Input = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleRecord()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMarshalLineKeyOrder(t *testing.T) {
	r := Record{
		Task:        TaskCallChain,
		Instruction: "instr",
		Input:       "in",
		Output:      "out",
		Metadata:    map[string]any{"operation": "insmod"},
	}
	line, err := r.MarshalLine()
	require.NoError(t, err)
	assert.Equal(t,
		`{"input":"in","instruction":"instr","metadata":{"operation":"insmod"},"output":"out"}`,
		string(line))
}

func TestMarshalLineOmitsEmptyMetadata(t *testing.T) {
	r := Record{
		Task:        TaskCallChain,
		Instruction: "instr",
		Output:      "out",
	}
	line, err := r.MarshalLine()
	require.NoError(t, err)
	assert.Equal(t, `{"input":"","instruction":"instr","output":"out"}`, string(line))
}

func TestMarshalLineTaskNotOnWire(t *testing.T) {
	line, err := sampleRecord().MarshalLine()
	require.NoError(t, err)
	assert.NotContains(t, string(line), "function_pointer_target")
	assert.NotContains(t, string(line), `"task"`)
}

func TestMarshalLineDeterministic(t *testing.T) {
	r := sampleRecord()
	first, err := r.MarshalLine()
	require.NoError(t, err)
	second, err := r.MarshalLine()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRoundTrip(t *testing.T) {
	r := sampleRecord()
	line, err := r.MarshalLine()
	require.NoError(t, err)

	back, err := UnmarshalLine(line)
	require.NoError(t, err)
	assert.Equal(t, r.Instruction, back.Instruction)
	assert.Equal(t, r.Input, back.Input)
	assert.Equal(t, r.Output, back.Output)
	assert.Equal(t, "demo_ops", back.Metadata["struct"])
	assert.Equal(t, "demo.c", back.Metadata["file"])
}

func TestUnmarshalLineRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"not json", "not json at all"},
		{"missing instruction", `{"input":"","output":"out"}`},
		{"missing output", `{"input":"","instruction":"instr"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalLine([]byte(tt.line))
			assert.Error(t, err)
		})
	}
}

func TestMarshalLineGolden(t *testing.T) {
	line, err := sampleRecord().MarshalLine()
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "field_target_line", append(line, '\n'))
}
