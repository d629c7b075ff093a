// Package style expands a block's sparse inline style ranges into dense
// per-code-unit arrays and re-partitions spans of the block into maximal
// runs of constant style.
package style

import (
	"sort"
	"strings"

	"github.com/riverfjs/draftmd-go/internal/textutil"
	"github.com/riverfjs/draftmd-go/internal/types"
)

// Recognized style names. Boolean styles wrap text with token pairs;
// string styles collect into one inline style container.
const (
	Bold          = "BOLD"
	Italic        = "ITALIC"
	Underline     = "UNDERLINE"
	Strikethrough = "STRIKETHROUGH"
	Code          = "CODE"
	Superscript   = "SUPERSCRIPT"
	Subscript     = "SUBSCRIPT"
	CodeBlock     = "CODE-BLOCK"
	Blockquote    = "BLOCKQUOTE"

	Color      = "COLOR"
	BGColor    = "BGCOLOR"
	FontSize   = "FONTSIZE"
	FontFamily = "FONTFAMILY"
	RawCSS     = "RAWCSS"
)

// defaultBooleanOrder is the declared order of the boolean style family.
// Wrapping applies in this order, innermost first.
var defaultBooleanOrder = []string{
	Bold, Italic, Underline, Strikethrough, Code,
	Superscript, Subscript, CodeBlock, Blockquote,
}

var stringOrder = []string{Color, BGColor, FontSize, FontFamily, RawCSS}

// prefixStyles maps Draft.js value-carrying style prefixes to their
// recognized style name. The remainder after the prefix is the value.
var prefixStyles = []struct {
	prefix string
	name   string
}{
	{"color-", Color},
	{"bgcolor-", BGColor},
	{"fontsize-", FontSize},
	{"fontfamily-", FontFamily},
}

// BlockStyles holds the dense per-code-unit style arrays for one block.
// It is recomputed per block and discarded after the block renders.
type BlockStyles struct {
	length  int
	boolean []string // boolean family, declared order
	dense   map[string][]string
}

// Materialize expands the block's inline style ranges into dense arrays,
// one per recognized style name, each of length Len(block.Text) in UTF-16
// code units. Later ranges overwrite earlier ones at overlapping indices;
// range order is preserved. Unrecognized style strings are ignored.
func Materialize(block *types.Block, cfg *types.Config) *BlockStyles {
	bs := &BlockStyles{
		length:  textutil.Len(block.Text),
		boolean: booleanOrder(cfg),
		dense:   make(map[string][]string),
	}
	booleanSet := make(map[string]bool, len(bs.boolean))
	for _, name := range bs.boolean {
		booleanSet[name] = true
	}

	for _, r := range block.InlineStyleRanges {
		name, value := classify(r.Style, booleanSet, cfg)
		if name == "" {
			continue
		}
		arr := bs.dense[name]
		if arr == nil {
			arr = make([]string, bs.length)
			bs.dense[name] = arr
		}
		start, end := clamp(r.Offset, bs.length), clamp(r.Offset+r.Length, bs.length)
		for i := start; i < end; i++ {
			arr[i] = value
		}
	}
	return bs
}

func classify(style string, booleanSet map[string]bool, cfg *types.Config) (name, value string) {
	for _, p := range prefixStyles {
		if strings.HasPrefix(style, p.prefix) {
			return p.name, style[len(p.prefix):]
		}
	}
	if booleanSet[style] {
		return style, "true"
	}
	if cfg != nil && cfg.RawCSSInlineStyles {
		if css, ok := parseRawCSS(style); ok {
			return RawCSS, css
		}
	}
	return "", ""
}

// booleanOrder returns the boolean family: the default names followed by
// any styles customStyleTransform adds, in sorted order for determinism.
func booleanOrder(cfg *types.Config) []string {
	order := defaultBooleanOrder
	if cfg == nil || len(cfg.CustomStyleTransform) == 0 {
		return order
	}
	known := make(map[string]bool, len(order))
	for _, name := range order {
		known[name] = true
	}
	var extra []string
	for name := range cfg.CustomStyleTransform {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	if len(extra) == 0 {
		return order
	}
	sort.Strings(extra)
	return append(append([]string{}, order...), extra...)
}

// BooleanFamily returns the boolean style names in declared order.
func (bs *BlockStyles) BooleanFamily() []string { return bs.boolean }

// StringFamily returns the string style names in declared order.
func (bs *BlockStyles) StringFamily() []string { return stringOrder }

// Len returns the block text length in UTF-16 code units.
func (bs *BlockStyles) Len() int { return bs.length }

// At returns the value of the named style at code-unit index i, or ""
// when the style is absent or i is out of range.
func (bs *BlockStyles) At(name string, i int) string {
	arr := bs.dense[name]
	if i < 0 || i >= len(arr) {
		return ""
	}
	return arr[i]
}

// Snapshot returns all recognized styles active at index i.
func (bs *BlockStyles) Snapshot(i int) map[string]string {
	active := make(map[string]string)
	for name, arr := range bs.dense {
		if i >= 0 && i < len(arr) && arr[i] != "" {
			active[name] = arr[i]
		}
	}
	return active
}

func clamp(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}
