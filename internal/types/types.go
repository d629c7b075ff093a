package types

// ContentState is the raw Draft.js editor content: an ordered list of
// blocks plus the entity map the blocks' entity ranges point into.
//
// The raw wire format keys the entity map with stringified integers
// ("0", "1", ...); encoding/json decodes those into int map keys directly.
type ContentState struct {
	Blocks    []Block        `json:"blocks"`
	EntityMap map[int]Entity `json:"entityMap"`
}

// Block is one paragraph-level unit of the document. Text is plain text;
// EntityRanges and InlineStyleRanges annotate it with half-open
// [offset, offset+length) intervals measured in UTF-16 code units.
type Block struct {
	Key               string             `json:"key"`
	Text              string             `json:"text"`
	Type              string             `json:"type"`
	Depth             int                `json:"depth"`
	EntityRanges      []EntityRange      `json:"entityRanges"`
	InlineStyleRanges []InlineStyleRange `json:"inlineStyleRanges"`
	Data              map[string]any     `json:"data,omitempty"`
}

// EntityRange marks a span of block text backed by the entity with the
// given key in the entity map.
type EntityRange struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
	Key    int `json:"key"`
}

// InlineStyleRange marks a span of block text carrying one named style.
type InlineStyleRange struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Style  string `json:"style"`
}

// Entity is a typed, data-bearing annotation (link, image, embed, ...).
type Entity struct {
	Type       string         `json:"type"`
	Mutability string         `json:"mutability"`
	Data       map[string]any `json:"data"`
}

// EntityTransform customizes entity rendering. It receives the entity and
// the already-rendered inner text and returns the replacement markup. The
// second result reports whether the transform produced a defined string;
// false falls through to the built-in rendering.
type EntityTransform func(entity Entity, text string) (string, bool)

// HashConfig controls hashtag detection inside block text.
type HashConfig struct {
	Trigger   string `yaml:"trigger"`
	Separator string `yaml:"separator"`
}

// Config holds the recognized rendering options. The zero value is the
// default configuration; unrecognized options in decoded input are ignored.
type Config struct {
	// CustomStyleTransform overrides or extends the markdown token table
	// for boolean styles. A single-element value wraps both sides with the
	// same token, a two-element value gives distinct left/right tokens,
	// and a present-but-empty value disables wrapping for that style.
	CustomStyleTransform map[string][]string `yaml:"styleTokens"`

	// EmptyLineBeforeBlock separates blocks with a blank line instead of a
	// single newline.
	EmptyLineBeforeBlock bool `yaml:"emptyLineBeforeBlock"`

	// PrintBreakLineLiteral emits literal `\n` tokens for block separators
	// instead of real newlines.
	PrintBreakLineLiteral bool `yaml:"printBreakLineLiteral"`

	// BlockTypesMapping overrides block-type prefixes.
	BlockTypesMapping map[string]string `yaml:"blockTypesMapping"`

	// RawCSSInlineStyles recognizes style names that are JSON object
	// literals and renders them as verbatim CSS declarations.
	RawCSSInlineStyles bool `yaml:"rawCssInlineStyles"`
}
