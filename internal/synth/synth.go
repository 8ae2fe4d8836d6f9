// Package synth expands the fact schema into training records.
//
// Expansion is exhaustive and deterministic: facts are walked in schema
// declaration order, and for a fixed schema repeated runs produce
// byte-identical record streams. An unhandled fact kind aborts the run
// with a ConsistencyError instead of being silently skipped.
package synth

import (
	"fmt"

	"github.com/kcorpus/kcorpus/internal/record"
	"github.com/kcorpus/kcorpus/internal/render"
	"github.com/kcorpus/kcorpus/internal/schema"
)

// scenarioKind tags a flat scenario group so the walk can pick the
// instruction template and chain style per category.
type scenarioKind string

const (
	kindModuleLifecycle scenarioKind = "module_lifecycle"
	kindMemory          scenarioKind = "memory"
	kindScheduler       scenarioKind = "scheduler"
	kindNetworkRX       scenarioKind = "network_rx"
	kindPower           scenarioKind = "power"
)

// Synthesizer expands a schema into records.
type Synthesizer struct {
	schema *schema.Schema
}

// New creates a synthesizer over the given schema. The schema is
// injected, never read from package state.
func New(s *schema.Schema) *Synthesizer {
	return &Synthesizer{schema: s}
}

// Generate walks the schema and returns all records in declaration
// order: framework callbacks first (two records each), then async
// mechanisms, the flat scenario groups, sync primitives, composites,
// and curated samples.
func (s *Synthesizer) Generate() ([]record.Record, error) {
	if err := s.schema.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	var records []record.Record

	for _, fw := range s.schema.Frameworks {
		for _, cb := range fw.Callbacks {
			records = append(records, callbackRecords(fw.Name, cb)...)
		}
	}

	for _, m := range s.schema.AsyncMechanisms {
		records = append(records, asyncRecord(m))
	}

	groups := []struct {
		kind  scenarioKind
		facts []schema.Scenario
	}{
		{kindModuleLifecycle, s.schema.ModuleLifecycle},
		{kindMemory, s.schema.MemoryOperations},
		{kindScheduler, s.schema.SchedulerOperations},
		{kindNetworkRX, s.schema.NetworkRXFlows},
		{kindPower, s.schema.PowerManagement},
	}
	for _, g := range groups {
		for _, sc := range g.facts {
			rec, err := scenarioRecord(g.kind, sc)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
	}

	for _, p := range s.schema.SyncPrimitives {
		records = append(records, syncRecord(p))
	}

	for _, c := range s.schema.Composites {
		records = append(records, compositeRecord(c))
	}

	for _, cs := range s.schema.Curated {
		records = append(records, curatedRecord(cs))
	}

	return records, nil
}

// callbackRecords emits the trigger-timing and field-target pair for
// one framework callback.
func callbackRecords(framework string, cb schema.Callback) []record.Record {
	code := frameworkSnippet(framework, cb.Name)
	meta := map[string]any{"framework": framework, "callback": cb.Name}

	return []record.Record{
		{
			Task:        record.TaskCallbackTiming,
			Instruction: fmt.Sprintf("分析以下代码中 my_%s 函数何时被调用", cb.Name),
			Input:       code,
			Output:      render.Callback(cb),
			Metadata:    meta,
		},
		{
			Task:        record.TaskFunctionPointerTarget,
			Instruction: fmt.Sprintf("分析 %s 结构体中 .%s 字段指向哪个函数", framework, cb.Name),
			Input:       code,
			Output:      render.FieldTarget(cb.Name),
			Metadata:    meta,
		},
	}
}

func asyncRecord(m schema.AsyncMechanism) record.Record {
	return record.Record{
		Task:        record.TaskAsyncPattern,
		Instruction: "识别以下代码中的异步模式，并解释执行流程",
		Input:       asyncSnippet(m.Name),
		Output:      render.Async(m),
		Metadata:    map[string]any{"pattern": m.Name},
	}
}

// scenarioRecord emits one call-chain record for a flat scenario fact.
// The kind switch is the fail-fast point: a new group without a case
// here is a consistency error, never a silent skip.
func scenarioRecord(kind scenarioKind, sc schema.Scenario) (record.Record, error) {
	var (
		instruction string
		input       string
		style       render.ChainStyle
		metaKey     string
	)
	chainHeading := "调用链"
	switch kind {
	case kindModuleLifecycle:
		instruction = fmt.Sprintf("分析 %s 命令执行时的内核调用链", sc.Name)
		input = moduleSnippet()
		style = render.StyleNumbered
		metaKey = "operation"
	case kindMemory:
		instruction = fmt.Sprintf("分析 %s 操作的内核调用链", sc.Name)
		input = memorySnippet(sc.Name)
		style = render.StyleBullet
		metaKey = "operation"
	case kindScheduler:
		instruction = fmt.Sprintf("分析 %s 场景下的调度流程", sc.Name)
		input = schedulerSnippet()
		style = render.StyleArrow
		metaKey = "operation"
	case kindNetworkRX:
		instruction = fmt.Sprintf("分析 %s 网络收包流程", sc.Name)
		input = networkSnippet(sc.Name)
		style = render.StyleNumbered
		metaKey = "flow"
		chainHeading = "完整流程"
	case kindPower:
		instruction = fmt.Sprintf("分析 %s 电源管理流程", sc.Name)
		input = powerSnippet(sc.Name)
		style = render.StyleArrow
		metaKey = "operation"
	default:
		return record.Record{}, &ConsistencyError{Kind: string(kind), Fact: sc.Name}
	}

	return record.Record{
		Task:        record.TaskCallChain,
		Instruction: instruction,
		Input:       input,
		Output:      render.ScenarioWithHeading(sc, style, chainHeading),
		Metadata:    map[string]any{metaKey: sc.Name},
	}, nil
}

func syncRecord(p schema.SyncPrimitive) record.Record {
	return record.Record{
		Task:        record.TaskSyncMechanism,
		Instruction: fmt.Sprintf("分析 %s 同步机制的使用方式和注意事项", p.Name),
		Input:       syncSnippet(p.Name),
		Output:      render.Sync(p),
		Metadata:    map[string]any{"mechanism": p.Name},
	}
}

func compositeRecord(c schema.CompositeScenario) record.Record {
	return record.Record{
		Task:        record.TaskCompositeScenario,
		Instruction: c.Instruction,
		Input:       c.Code,
		Output:      render.Composite(c),
		Metadata:    map[string]any{"scenario": c.Name},
	}
}

func curatedRecord(cs schema.CuratedSample) record.Record {
	return record.Record{
		Task:        record.TaskReasoning,
		Instruction: cs.Question,
		Input:       cs.Code,
		Output:      render.Reasoning(cs.Thinking, cs.Answer),
		Metadata: map[string]any{
			"id":         cs.ID,
			"category":   cs.Category,
			"difficulty": cs.Difficulty,
			"source":     cs.Source,
			"concepts":   cs.Concepts,
		},
	}
}
