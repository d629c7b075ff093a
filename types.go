package draftmd

import (
	"github.com/riverfjs/draftmd-go/internal/textutil"
	"github.com/riverfjs/draftmd-go/internal/types"
)

// Exported type aliases for the raw content model.
type (
	ContentState     = types.ContentState
	Block            = types.Block
	Entity           = types.Entity
	EntityRange      = types.EntityRange
	InlineStyleRange = types.InlineStyleRange
	HashConfig       = types.HashConfig
	Config           = types.Config
	EntityTransform  = types.EntityTransform
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Draft.js measures style and entity range offsets in UTF-16 code units,
// not Go string bytes or runes. Characters outside the BMP
// (codepoint > 0xFFFF) take 2 code units (a surrogate pair).
func UTF16Len(text string) int {
	return textutil.Len(text)
}
