package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcorpus/kcorpus/internal/schema"
)

func TestComposite(t *testing.T) {
	c := schema.CompositeScenario{
		Name:        "demo",
		Title:       "USB 设备完整生命周期",
		Instruction: "分析完整生命周期",
		Phases: []schema.CompositePhase{
			{Title: "阶段1：驱动注册", Body: "insmod 加载模块", Timeline: "驱动注册完成"},
			{Title: "阶段2：设备插入", Body: "probe 被调用", Timeline: "设备就绪"},
		},
	}

	out := Composite(c)
	assert.True(t, strings.HasPrefix(out, "**USB 设备完整生命周期**\n"))
	assert.Contains(t, out, "**阶段1：驱动注册**\n\ninsmod 加载模块")
	assert.Contains(t, out, "**阶段2：设备插入**\n\nprobe 被调用")

	// One rule per phase plus one before the timeline summary.
	assert.Equal(t, 3, strings.Count(out, phaseRule))

	idx := strings.Index(out, "**时间线总结**：\n")
	require.GreaterOrEqual(t, idx, 0)
	tail := out[idx:]
	assert.Contains(t, tail, "\n  [T0] 驱动注册完成")
	assert.Contains(t, tail, "\n  [T1] 设备就绪")
	assert.Less(t, strings.Index(tail, "[T0]"), strings.Index(tail, "[T1]"))
}

func TestCompositeSinglePhase(t *testing.T) {
	c := schema.CompositeScenario{
		Title:  "标题",
		Phases: []schema.CompositePhase{{Title: "唯一阶段", Body: "内容", Timeline: "完成"}},
	}
	out := Composite(c)
	assert.Equal(t, 2, strings.Count(out, phaseRule))
	assert.Contains(t, out, "[T0] 完成")
	assert.NotContains(t, out, "[T1]")
}
