package markup

import (
	"strings"

	"github.com/riverfjs/draftmd-go/internal/section"
	"github.com/riverfjs/draftmd-go/internal/style"
	"github.com/riverfjs/draftmd-go/internal/textutil"
)

// renderSection renders one section: boolean style runs over the whole
// section, string style runs nested within each, then the section's
// entity or hashtag wrapping.
func (r *Renderer) renderSection(bs *style.BlockStyles, text []uint16, sec section.Section) (string, error) {
	var sb strings.Builder
	for _, run := range style.Runs(bs, bs.BooleanFamily(), sec.Start, sec.End) {
		sb.WriteString(r.renderBooleanRun(bs, text, run))
	}
	content := sb.String()

	switch sec.Kind {
	case section.KindEntity:
		return r.renderEntity(sec.EntityKey, content)
	case section.KindHashtag:
		return "[" + content + "](" + content + ")", nil
	}
	return content, nil
}

// renderBooleanRun renders the run's string-family sub-runs and wraps the
// result with the token pair of each active boolean style, in declared
// family order (first name innermost).
func (r *Renderer) renderBooleanRun(bs *style.BlockStyles, text []uint16, run style.Run) string {
	var sb strings.Builder
	for _, inner := range style.Runs(bs, bs.StringFamily(), run.Start, run.End) {
		sb.WriteString(r.renderStringRun(text, inner))
	}
	out := sb.String()

	for _, name := range bs.BooleanFamily() {
		if run.Styles[name] == "" {
			continue
		}
		tokens := r.styleTokens[name]
		if len(tokens) == 0 {
			// Present-but-empty table entry: no wrapping for this style.
			continue
		}
		left, right := tokens[0], tokens[0]
		if len(tokens) > 1 {
			right = tokens[1]
		}
		out = left + out + right
	}
	return out
}

// renderStringRun escapes the run's text and, when any string style is
// active, wraps it in a single inline styled container carrying the CSS
// declarations and matching data marker attributes.
func (r *Renderer) renderStringRun(text []uint16, run style.Run) string {
	content := escapeText(textutil.Decode(text[run.Start:run.End]))

	var decls []string
	var markers strings.Builder
	if v := run.Styles[style.Color]; v != "" {
		decls = append(decls, "color: "+v+";")
		markers.WriteString(` data-color="true"`)
	}
	if v := run.Styles[style.BGColor]; v != "" {
		decls = append(decls, "background-color: "+v+";")
		markers.WriteString(` data-bgcolor="true"`)
	}
	if v := run.Styles[style.FontSize]; v != "" {
		decls = append(decls, "font-size: "+fontSizeValue(v)+";")
		markers.WriteString(` data-fontsize="true"`)
	}
	if v := run.Styles[style.FontFamily]; v != "" {
		decls = append(decls, "font-family: "+v+";")
		markers.WriteString(` data-fontfamily="true"`)
	}
	if r.cfg.RawCSSInlineStyles {
		if v := run.Styles[style.RawCSS]; v != "" {
			decls = append(decls, v)
		}
	}
	if len(decls) == 0 {
		return content
	}
	return `<span style="` + strings.Join(decls, " ") + `"` + markers.String() + `>` + content + `</span>`
}

// fontSizeValue appends px to bare numeric sizes; explicit units pass
// through verbatim.
func fontSizeValue(v string) string {
	for _, c := range v {
		if (c < '0' || c > '9') && c != '.' {
			return v
		}
	}
	return v + "px"
}

// escapeText escapes markup-significant characters in a run of plain
// text. Newlines become a markdown hard line break. The composer calls
// this exactly once per style run; output strings are never re-escaped.
func escapeText(s string) string {
	if !strings.ContainsAny(s, "\n&<>") {
		return s
	}
	var sb strings.Builder
	for _, c := range s {
		switch c {
		case '\n':
			sb.WriteString("  \n")
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
