package synth

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcorpus/kcorpus/internal/record"
	"github.com/kcorpus/kcorpus/internal/schema"
)

// sampleDriverSchema is the minimal one-callback fact set used for the
// concrete output checks.
func sampleDriverSchema() *schema.Schema {
	return &schema.Schema{
		Frameworks: []schema.Framework{
			{
				Name: "sample_driver",
				Callbacks: []schema.Callback{
					{
						Name:      "probe",
						Trigger:   "device match",
						Context:   "process context",
						CallChain: []string{"register_device", "match_driver", "call_probe"},
					},
				},
			},
		},
	}
}

func TestGenerateCallbackPair(t *testing.T) {
	recs, err := New(sampleDriverSchema()).Generate()
	require.NoError(t, err)
	require.Len(t, recs, 2)

	timing := recs[0]
	assert.Equal(t, record.TaskCallbackTiming, timing.Task)
	assert.Equal(t, "分析以下代码中 my_probe 函数何时被调用", timing.Instruction)
	assert.Contains(t, timing.Output, "device match")
	assert.Contains(t, timing.Output, "process context")
	assert.Equal(t, "sample_driver", timing.Metadata["framework"])
	assert.Equal(t, "probe", timing.Metadata["callback"])

	chainIdx := strings.Index(timing.Output, "**调用链**：\n")
	require.GreaterOrEqual(t, chainIdx, 0)
	chainBlock := timing.Output[chainIdx+len("**调用链**：\n"):]
	lines := strings.Split(chainBlock, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[2], "call_probe"))

	target := recs[1]
	assert.Equal(t, record.TaskFunctionPointerTarget, target.Task)
	assert.Equal(t, "分析 sample_driver 结构体中 .probe 字段指向哪个函数", target.Instruction)
	assert.Equal(t,
		".probe 字段指向 my_probe 函数。\n\n这是在结构体初始化时通过 .probe = my_probe 赋值的。",
		target.Output)
}

func TestGenerateCompleteness(t *testing.T) {
	s := schema.Default()
	recs, err := New(s).Generate()
	require.NoError(t, err)

	callbacks := 0
	for _, fw := range s.Frameworks {
		callbacks += len(fw.Callbacks)
	}
	scenarios := len(s.ModuleLifecycle) + len(s.MemoryOperations) +
		len(s.SchedulerOperations) + len(s.NetworkRXFlows) + len(s.PowerManagement)
	want := callbacks*2 + len(s.AsyncMechanisms) + scenarios +
		len(s.SyncPrimitives) + len(s.Composites) + len(s.Curated)
	assert.Len(t, recs, want)

	counts := map[record.Task]int{}
	for _, r := range recs {
		require.NoError(t, r.Validate())
		counts[r.Task]++
	}
	assert.Equal(t, callbacks, counts[record.TaskCallbackTiming])
	assert.Equal(t, callbacks, counts[record.TaskFunctionPointerTarget])
	assert.Equal(t, len(s.AsyncMechanisms), counts[record.TaskAsyncPattern])
	assert.Equal(t, scenarios, counts[record.TaskCallChain])
	assert.Equal(t, len(s.SyncPrimitives), counts[record.TaskSyncMechanism])
	assert.Equal(t, len(s.Composites), counts[record.TaskCompositeScenario])
	assert.Equal(t, len(s.Curated), counts[record.TaskReasoning])
}

func TestGenerateDeterministic(t *testing.T) {
	marshalAll := func() []byte {
		recs, err := New(schema.Default()).Generate()
		require.NoError(t, err)
		var buf bytes.Buffer
		for _, r := range recs {
			line, err := r.MarshalLine()
			require.NoError(t, err)
			buf.Write(line)
			buf.WriteByte('\n')
		}
		return buf.Bytes()
	}

	assert.Equal(t, marshalAll(), marshalAll())
}

func TestGenerateDeclarationOrder(t *testing.T) {
	recs, err := New(schema.Default()).Generate()
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	// The walk starts at the first framework's first callback and ends
	// at the last curated sample.
	assert.Equal(t, record.TaskCallbackTiming, recs[0].Task)
	assert.Equal(t, "usb_driver", recs[0].Metadata["framework"])
	assert.Equal(t, "probe", recs[0].Metadata["callback"])
	assert.Equal(t, record.TaskReasoning, recs[len(recs)-1].Task)
	assert.Equal(t, "diverse_003", recs[len(recs)-1].Metadata["id"])
}

func TestScenarioRecordChainHeading(t *testing.T) {
	sc := schema.Scenario{
		Name:        "udp_rx",
		Description: "UDP 收包流程",
		CallChain:   []string{"netif_receive_skb", "ip_rcv", "udp_rcv"},
	}

	// Network receive flows title the chain 完整流程; every other
	// scenario group keeps 调用链.
	rx, err := scenarioRecord(kindNetworkRX, sc)
	require.NoError(t, err)
	assert.Contains(t, rx.Output, "**完整流程**：\n  1. netif_receive_skb")
	assert.NotContains(t, rx.Output, "调用链")

	mod, err := scenarioRecord(kindModuleLifecycle, sc)
	require.NoError(t, err)
	assert.Contains(t, mod.Output, "**调用链**：\n  1. netif_receive_skb")
	assert.NotContains(t, mod.Output, "完整流程")
}

func TestGenerateRejectsInvalidSchema(t *testing.T) {
	s := &schema.Schema{
		Frameworks: []schema.Framework{
			{Name: "usb_driver", Callbacks: []schema.Callback{{Name: "probe"}}},
		},
	}
	_, err := New(s).Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schema")
}

func TestScenarioRecordUnknownKindFailsFast(t *testing.T) {
	_, err := scenarioRecord(scenarioKind("freshly_added_group"), schema.Scenario{
		Name:        "x",
		Description: "d",
	})
	require.Error(t, err)
	assert.True(t, IsConsistencyError(err))
	assert.Contains(t, err.Error(), "freshly_added_group")
}

func TestCuratedRecordMetadata(t *testing.T) {
	cs := schema.CuratedSample{
		ID:         "ptr_001",
		Category:   "function_pointer",
		Difficulty: "medium",
		Source:     "drivers/usb/storage",
		Concepts:   []string{"函数指针", "ops 结构体"},
		Question:   "这个指针指向哪里？",
		Thinking:   "逐步分析",
		Answer:     "答案",
	}
	r := curatedRecord(cs)
	assert.Equal(t, record.TaskReasoning, r.Task)
	assert.Equal(t, "medium", r.Metadata["difficulty"])
	assert.Equal(t, []string{"函数指针", "ops 结构体"}, r.Metadata["concepts"])
	assert.Equal(t, "<thinking>\n逐步分析\n</thinking>\n\n答案", r.Output)

	// Metadata with a string slice must still serialize canonically.
	line, err := r.MarshalLine()
	require.NoError(t, err)
	assert.Contains(t, string(line), `"concepts":["函数指针","ops 结构体"]`)
}
