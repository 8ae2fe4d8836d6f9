package miner

import (
	"regexp"
	"strings"
)

// opsHeadPattern matches the head of an operations-table declaration:
// an optionally static/const struct whose type name ends in
// _operation(s) or _ops, assigned a brace initializer. The body is NOT
// part of the pattern - it is found by brace-depth tracking, so nested
// sub-initializers cannot truncate the match.
var opsHeadPattern = regexp.MustCompile(`(?:static\s+)?(?:const\s+)?struct\s+(\w+(?:_operations?|_ops))\s+(\w+)\s*=\s*\{`)

// fieldPattern matches one .field = identifier designated initializer.
var fieldPattern = regexp.MustCompile(`\.(\w+)\s*=\s*(\w+)`)

// Literal is one matched operations-table structure literal.
type Literal struct {
	StructType string // e.g. "demo_ops"
	Variable   string // e.g. "cfg"
	Body       string // text between the outer braces, exclusive
	Text       string // full matched text, head through closing brace
}

// FieldAssignment is one top-level .field = identifier pair inside a
// literal body.
type FieldAssignment struct {
	Field  string
	Target string
}

// findLiterals locates all operations-table literals in the source
// text, in source order. The closing brace is found by depth tracking:
// nested initializer braces are stepped over, not matched greedily.
func findLiterals(content string) []Literal {
	var literals []Literal

	for _, loc := range opsHeadPattern.FindAllStringSubmatchIndex(content, -1) {
		// loc[1] is the end of the head match; content[loc[1]-1] is '{'.
		open := loc[1] - 1
		closing := matchingBrace(content, open)
		if closing < 0 {
			// Unterminated literal, likely truncated source. Skip it.
			continue
		}
		literals = append(literals, Literal{
			StructType: content[loc[2]:loc[3]],
			Variable:   content[loc[4]:loc[5]],
			Body:       content[open+1 : closing],
			Text:       content[loc[0] : closing+1],
		})
	}
	return literals
}

// matchingBrace returns the index of the brace closing the one at open,
// or -1 if the text ends first.
func matchingBrace(content string, open int) int {
	depth := 0
	for i := open; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// topLevelFields extracts the depth-0 .field = identifier pairs from a
// literal body. Dotted assignments inside nested sub-initializers are
// ignored - only the table's own fields are bindings.
func topLevelFields(body string) []FieldAssignment {
	flat := stripNested(body)

	var fields []FieldAssignment
	for _, m := range fieldPattern.FindAllStringSubmatch(flat, -1) {
		fields = append(fields, FieldAssignment{Field: m[1], Target: m[2]})
	}
	return fields
}

// stripNested blanks out every brace-nested region of the body so the
// field pattern only sees top-level assignments. Blanking (rather than
// deleting) keeps the text length stable, which keeps matches in source
// order.
func stripNested(body string) string {
	var b strings.Builder
	b.Grow(len(body))
	depth := 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch c {
		case '{':
			depth++
			b.WriteByte(' ')
		case '}':
			if depth > 0 {
				depth--
			}
			b.WriteByte(' ')
		default:
			if depth == 0 {
				b.WriteByte(c)
			} else {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
