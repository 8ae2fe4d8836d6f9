// Package render turns schema facts into the display text used as
// record outputs. Every function is pure: same fact in, same text out,
// and absent optional fields simply omit their section.
package render

import (
	"fmt"
	"strings"
)

// ChainStyle selects how an ordered call chain is laid out.
type ChainStyle int

const (
	// StyleNumbered renders "  1. step" lines.
	StyleNumbered ChainStyle = iota
	// StyleArrow renders "  → step" lines.
	StyleArrow
	// StyleBullet renders "  • step" lines.
	StyleBullet
	// StyleTree renders a branch per step with indentation equal to the
	// zero-based step index. The last step gets the terminal glyph.
	StyleTree
)

const (
	treeBranchGlyph   = "├── "
	treeTerminalGlyph = "└── "
	treeIndentUnit    = "    "
)

// Chain renders an ordered sequence of steps in the given style. The
// result has no trailing newline; an empty chain renders as the empty
// string.
func Chain(steps []string, style ChainStyle) string {
	if len(steps) == 0 {
		return ""
	}
	lines := make([]string, len(steps))
	for i, step := range steps {
		switch style {
		case StyleNumbered:
			lines[i] = fmt.Sprintf("  %d. %s", i+1, step)
		case StyleArrow:
			lines[i] = "  → " + step
		case StyleBullet:
			lines[i] = "  • " + step
		case StyleTree:
			glyph := treeBranchGlyph
			if i == len(steps)-1 {
				glyph = treeTerminalGlyph
			}
			lines[i] = strings.Repeat(treeIndentUnit, i) + glyph + step
		}
	}
	return strings.Join(lines, "\n")
}

// section formats a "**heading**：body" line.
func section(heading, body string) string {
	return fmt.Sprintf("**%s**：%s", heading, body)
}

// chainSection formats a heading followed by the rendered chain.
func chainSection(heading string, steps []string, style ChainStyle) string {
	return fmt.Sprintf("**%s**：\n%s", heading, Chain(steps, style))
}

// joinSections joins non-empty blocks with a blank line between them.
func joinSections(blocks ...string) string {
	kept := blocks[:0:0]
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}
