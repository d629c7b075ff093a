// Package draftmd converts Draft.js raw content into a markdown/HTML
// hybrid string.
//
// The input is the raw editor content: a sequence of typed text blocks
// annotated with overlapping inline style ranges, entity references and
// block metadata. The output is a single string with the blocks rendered
// in order. The conversion is deterministic and pure: the same document
// and configuration always produce the same output.
//
// Main API:
//   - Convert(): render a decoded ContentState
//   - ConvertJSON(): decode the raw Draft.js JSON wire format, then render
//
// Example:
//
//	state := &draftmd.ContentState{
//	    Blocks: []draftmd.Block{{
//	        Text: "hello",
//	        Type: "header-one",
//	        InlineStyleRanges: []draftmd.InlineStyleRange{
//	            {Offset: 0, Length: 5, Style: "BOLD"},
//	        },
//	    }},
//	}
//	out, err := draftmd.Convert(state)
//	// out == "# **hello**\n"
//
// Offsets and lengths in the raw format are measured in UTF-16 code
// units, matching the JavaScript editor; the converter accounts for
// surrogate pairs throughout.
package draftmd

import (
	"encoding/json"
	"fmt"

	"github.com/riverfjs/draftmd-go/internal/markup"
)

// Convert renders the content state as one markdown string.
//
// Blocks render in input order; an empty or nil document yields "".
// Conversion is all-or-nothing: an error from any block (for example an
// entity range whose key is absent from the entity map) aborts the whole
// conversion.
func Convert(state *ContentState, opts ...Option) (string, error) {
	options := applyOptions(opts...)
	r := markup.NewRenderer(options.Config, options.HashConfig, options.EntityTransform)
	return r.Render(state)
}

// ConvertJSON decodes raw Draft.js JSON (the `convertToRaw` wire format)
// and renders it. Unrecognized JSON keys are ignored.
func ConvertJSON(raw []byte, opts ...Option) (string, error) {
	var state ContentState
	if err := json.Unmarshal(raw, &state); err != nil {
		return "", fmt.Errorf("decode content state: %w", err)
	}
	return Convert(&state, opts...)
}
