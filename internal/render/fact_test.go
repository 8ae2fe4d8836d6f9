package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcorpus/kcorpus/internal/schema"
)

func TestCallback(t *testing.T) {
	cb := schema.Callback{
		Name:      "probe",
		Trigger:   "device match",
		Context:   "process context",
		CallChain: []string{"register_device", "match_driver", "call_probe"},
	}

	out := Callback(cb)
	assert.Contains(t, out, "my_probe 函数的触发时机：")
	assert.Contains(t, out, "device match")
	assert.Contains(t, out, "process context")
	assert.NotContains(t, out, "**注意**")

	// The chain block is three lines, tree style, ending at the target.
	chainIdx := strings.Index(out, "**调用链**：\n")
	require.GreaterOrEqual(t, chainIdx, 0)
	chainBlock := out[chainIdx+len("**调用链**：\n"):]
	lines := strings.Split(chainBlock, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "├── register_device", lines[0])
	assert.Equal(t, "    ├── match_driver", lines[1])
	assert.Equal(t, "        └── call_probe", lines[2])
}

func TestCallbackNote(t *testing.T) {
	cb := schema.Callback{
		Name:      "probe",
		Trigger:   "t",
		Context:   "c",
		CallChain: []string{"a"},
		Note:      "注意：不是 insmod 时调用",
	}
	assert.Contains(t, Callback(cb), "**注意**：注意：不是 insmod 时调用")
}

func TestFieldTarget(t *testing.T) {
	assert.Equal(t,
		".probe 字段指向 my_probe 函数。\n\n这是在结构体初始化时通过 .probe = my_probe 赋值的。",
		FieldTarget("probe"))
}

func TestMinedFieldTarget(t *testing.T) {
	assert.Equal(t,
		"cfg.read 指向 demo_read 函数。\n\n这是通过结构体初始化 .read = demo_read 赋值的。",
		MinedFieldTarget("cfg", "read", "demo_read"))
}

func TestScenario(t *testing.T) {
	sc := schema.Scenario{
		Name:        "insmod",
		Description: "insmod 命令执行流程",
		Context:     "进程上下文",
		CallChain:   []string{"sys_init_module", "do_init_module", "mod->init()"},
		Note:        "init 返回非零则加载失败",
	}

	out := Scenario(sc, StyleNumbered)
	assert.True(t, strings.HasPrefix(out, "**insmod 命令执行流程**"))
	assert.Contains(t, out, "**执行上下文**：进程上下文")
	assert.Contains(t, out, "**调用链**：\n  1. sys_init_module")
	assert.Contains(t, out, "  3. mod->init()")
	assert.Contains(t, out, "**注意**：init 返回非零则加载失败")
}

func TestScenarioWithHeading(t *testing.T) {
	sc := schema.Scenario{
		Name:        "udp_rx",
		Description: "UDP 收包流程",
		CallChain:   []string{"netif_receive_skb", "ip_rcv", "udp_rcv"},
	}

	out := ScenarioWithHeading(sc, StyleNumbered, "完整流程")
	assert.Contains(t, out, "**完整流程**：\n  1. netif_receive_skb")
	assert.Contains(t, out, "  3. udp_rcv")
	assert.NotContains(t, out, "调用链")
}

func TestScenarioOmitsEmptySections(t *testing.T) {
	sc := schema.Scenario{Name: "minimal", Description: "desc"}
	out := Scenario(sc, StyleArrow)
	assert.Equal(t, "**desc**", out)
	assert.NotContains(t, out, "调用链")
	assert.NotContains(t, out, "执行上下文")
}

func TestAsync(t *testing.T) {
	m := schema.AsyncMechanism{
		Name:        "workqueue",
		Description: "把工作推迟到内核线程中执行",
		Context:     "进程上下文（可睡眠）",
		CallChain:   []string{"schedule_work", "insert_work", "worker_thread", "work->func()"},
		FlowSteps:   []string{"INIT_WORK 绑定处理函数", "schedule_work 入队", "worker 线程执行"},
		Timeline:    "入队 → 唤醒 worker → 执行",
		TypicalUse:  "中断下半部",
		BindFuncs:   []string{"INIT_WORK"},
	}

	out := Async(m)
	assert.True(t, strings.HasPrefix(out, "**异步模式**：WORKQUEUE (把工作推迟到内核线程中执行)"))
	assert.Contains(t, out, "**执行流程**：\n  1. INIT_WORK 绑定处理函数")
	assert.Contains(t, out, "**调用链**：\n  1. schedule_work")
	assert.Contains(t, out, "**时间线**：\n入队 → 唤醒 worker → 执行")
	assert.Contains(t, out, "**典型用途**：中断下半部")
}

func TestAsyncWithoutTimeline(t *testing.T) {
	m := schema.AsyncMechanism{
		Name:        "timer",
		Description: "d",
		Context:     "c",
		CallChain:   []string{"x"},
		BindFuncs:   []string{"timer_setup"},
	}
	out := Async(m)
	assert.NotContains(t, out, "时间线")
	assert.NotContains(t, out, "执行流程")
}

func TestSync(t *testing.T) {
	p := schema.SyncPrimitive{
		Name:           "mutex",
		Description:    "互斥锁，竞争时睡眠等待",
		LockFuncs:      []string{"mutex_lock", "mutex_lock_interruptible"},
		UnlockFuncs:    []string{"mutex_unlock"},
		Context:        "只能在进程上下文使用",
		ContendedChain: []string{"mutex_lock", "__mutex_lock_slowpath", "schedule"},
	}

	out := Sync(p)
	assert.True(t, strings.HasPrefix(out, "**互斥锁，竞争时睡眠等待**"))
	assert.Contains(t, out, "**加锁操作**：mutex_lock, mutex_lock_interruptible")
	assert.Contains(t, out, "**解锁操作**：mutex_unlock")
	assert.Contains(t, out, "**竞争时调用链**：\n  → mutex_lock")
}

func TestReasoning(t *testing.T) {
	out := Reasoning("第一步分析指针来源", "最终答案")
	assert.Equal(t, "<thinking>\n第一步分析指针来源\n</thinking>\n\n最终答案", out)
}
