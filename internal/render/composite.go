package render

import (
	"fmt"
	"strings"

	"github.com/kcorpus/kcorpus/internal/schema"
)

// phaseRule separates the pre-authored phase blocks of a composite
// scenario.
var phaseRule = strings.Repeat("═", 75)

// Composite concatenates a composite scenario's pre-authored phases with
// a separating rule and appends a synthesized timeline summary: one
// [Tn] line per phase, in phase order.
func Composite(c schema.CompositeScenario) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", c.Title)

	for _, phase := range c.Phases {
		b.WriteString("\n" + phaseRule + "\n\n")
		fmt.Fprintf(&b, "**%s**\n\n", phase.Title)
		b.WriteString(phase.Body)
		b.WriteString("\n")
	}

	b.WriteString("\n" + phaseRule + "\n\n")
	b.WriteString("**时间线总结**：\n")
	for i, phase := range c.Phases {
		fmt.Fprintf(&b, "\n  [T%d] %s", i, phase.Timeline)
	}
	return b.String()
}
