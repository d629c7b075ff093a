package markup

import (
	"strings"

	"github.com/riverfjs/draftmd-go/internal/section"
	"github.com/riverfjs/draftmd-go/internal/style"
	"github.com/riverfjs/draftmd-go/internal/textutil"
	"github.com/riverfjs/draftmd-go/internal/types"
)

// RenderBlock renders one block: type prefix, section/style composition,
// boundary whitespace escaping, list indentation and the block separator.
func (r *Renderer) RenderBlock(b *types.Block) (string, error) {
	content, err := r.renderBlockContent(b)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if types.IsListType(b.Type) && b.Depth > 0 {
		sb.WriteString(strings.Repeat(" ", b.Depth*4))
	}
	sb.WriteString(r.blockTypes[b.Type])
	sb.WriteString(content)
	sb.WriteString(r.separator())
	return sb.String(), nil
}

// renderBlockContent renders the block's text. Atomic blocks short-circuit
// to their first entity; everything else is segmented and composed
// section by section.
func (r *Renderer) renderBlockContent(b *types.Block) (string, error) {
	if isAtomic(b) {
		return r.renderEntity(b.EntityRanges[0].Key, "")
	}

	text := textutil.Encode(b.Text)
	styles := style.Materialize(b, r.cfg)
	sections := section.Split(text, b.EntityRanges, r.hash)

	var sb strings.Builder
	for i, sec := range sections {
		rendered, err := r.renderSection(styles, text, sec)
		if err != nil {
			return "", err
		}
		if i == 0 {
			rendered = escapeLeadingSpaces(rendered)
		}
		if i == len(sections)-1 {
			rendered = escapeTrailingSpaces(rendered)
		}
		sb.WriteString(rendered)
	}
	return sb.String(), nil
}

// isAtomic reports whether the block is wholly a placeholder for one
// entity: it references an entity but carries no text of its own.
func isAtomic(b *types.Block) bool {
	return len(b.EntityRanges) > 0 && (textutil.IsEmpty(b.Text) || b.Type == "atomic")
}

func (r *Renderer) separator() string {
	newline := "\n"
	if r.cfg.PrintBreakLineLiteral {
		newline = `\n`
	}
	if r.cfg.EmptyLineBeforeBlock {
		return newline + newline
	}
	return newline
}

// escapeLeadingSpaces replaces the run of leading spaces with &nbsp;
// entities so the markdown renderer preserves them.
func escapeLeadingSpaces(s string) string {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	if n == 0 {
		return s
	}
	return strings.Repeat("&nbsp;", n) + s[n:]
}

func escapeTrailingSpaces(s string) string {
	n := 0
	for n < len(s) && s[len(s)-1-n] == ' ' {
		n++
	}
	if n == 0 {
		return s
	}
	return s[:len(s)-n] + strings.Repeat("&nbsp;", n)
}
