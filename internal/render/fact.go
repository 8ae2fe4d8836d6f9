package render

import (
	"fmt"
	"strings"

	"github.com/kcorpus/kcorpus/internal/schema"
)

// Section order is fixed across all fact kinds: description/trigger,
// execution context, chain, note. Optional sections are simply omitted.

// Callback renders the trigger-timing answer for one framework callback.
// The handler is the synthesized my_<name> convention used by the
// matching code skeleton.
func Callback(cb schema.Callback) string {
	header := fmt.Sprintf("my_%s 函数的触发时机：", cb.Name)
	blocks := []string{
		header,
		section("触发条件", cb.Trigger),
		section("执行上下文", cb.Context),
		chainSection("调用链", cb.CallChain, StyleTree),
	}
	if cb.Note != "" {
		blocks = append(blocks, section("注意", cb.Note))
	}
	return joinSections(blocks...)
}

// FieldTarget renders the deterministic field-target answer for a
// synthesized handler: field .<name> is bound to my_<name>.
func FieldTarget(callback string) string {
	return fmt.Sprintf(".%s 字段指向 my_%s 函数。\n\n这是在结构体初始化时通过 .%s = my_%s 赋值的。",
		callback, callback, callback, callback)
}

// MinedFieldTarget renders the field-target answer for a mined binding,
// restating the structure-literal assignment it came from.
func MinedFieldTarget(variable, field, target string) string {
	return fmt.Sprintf("%s.%s 指向 %s 函数。\n\n这是通过结构体初始化 .%s = %s 赋值的。",
		variable, field, target, field, target)
}

// Scenario renders a flat scenario fact under the default 调用链 chain
// heading. An empty chain omits the chain section entirely.
func Scenario(sc schema.Scenario, style ChainStyle) string {
	return ScenarioWithHeading(sc, style, "调用链")
}

// ScenarioWithHeading is Scenario with an explicit chain heading.
// Network receive flows title their chain 完整流程 instead of 调用链.
func ScenarioWithHeading(sc schema.Scenario, style ChainStyle, chainHeading string) string {
	blocks := []string{fmt.Sprintf("**%s**", sc.Description)}
	if sc.Context != "" {
		blocks = append(blocks, section("执行上下文", sc.Context))
	}
	if len(sc.CallChain) > 0 {
		blocks = append(blocks, chainSection(chainHeading, sc.CallChain, style))
	}
	if sc.Note != "" {
		blocks = append(blocks, section("注意", sc.Note))
	}
	return joinSections(blocks...)
}

// Async renders the pattern/flow answer for an async mechanism:
// identification line, context, the mechanism-specific enumerated flow,
// the kernel call chain, and the optional timeline and typical-use
// sections.
func Async(m schema.AsyncMechanism) string {
	blocks := []string{
		fmt.Sprintf("**异步模式**：%s (%s)", strings.ToUpper(m.Name), m.Description),
		section("执行上下文", m.Context),
	}
	if len(m.FlowSteps) > 0 {
		blocks = append(blocks, chainSection("执行流程", m.FlowSteps, StyleNumbered))
	}
	blocks = append(blocks, chainSection("调用链", m.CallChain, StyleNumbered))
	if m.Timeline != "" {
		blocks = append(blocks, "**时间线**：\n"+m.Timeline)
	}
	if m.TypicalUse != "" {
		blocks = append(blocks, section("典型用途", m.TypicalUse))
	}
	return joinSections(blocks...)
}

// Sync renders a synchronization primitive: lock/unlock operation sets,
// usage context, and the contended-path chain when the primitive has
// one.
func Sync(p schema.SyncPrimitive) string {
	blocks := []string{
		fmt.Sprintf("**%s**", p.Description),
		section("使用上下文", p.Context),
		section("加锁操作", strings.Join(p.LockFuncs, ", ")),
		section("解锁操作", strings.Join(p.UnlockFuncs, ", ")),
	}
	if p.Note != "" {
		blocks = append(blocks, section("注意", p.Note))
	}
	if len(p.ContendedChain) > 0 {
		blocks = append(blocks, chainSection("竞争时调用链", p.ContendedChain, StyleArrow))
	}
	return joinSections(blocks...)
}

// Reasoning wraps a curated sample's thinking and answer into the
// reasoning wire form.
func Reasoning(thinking, answer string) string {
	return fmt.Sprintf("<thinking>\n%s\n</thinking>\n\n%s", thinking, answer)
}
