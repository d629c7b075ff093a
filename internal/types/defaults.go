package types

// DefaultHashConfig returns the default hashtag detection config.
func DefaultHashConfig() HashConfig {
	return HashConfig{Trigger: "#", Separator: " "}
}

// MergeHashConfig fills the unset fields of override from the defaults.
func MergeHashConfig(override HashConfig) HashConfig {
	merged := DefaultHashConfig()
	if override.Trigger != "" {
		merged.Trigger = override.Trigger
	}
	if override.Separator != "" {
		merged.Separator = override.Separator
	}
	return merged
}

// DefaultStyleTokens returns the markdown token table for boolean styles.
// A single token wraps both sides; a pair gives distinct left/right tokens
// (BLOCKQUOTE is prefix-only).
func DefaultStyleTokens() map[string][]string {
	return map[string][]string{
		"BOLD":          {"**"},
		"ITALIC":        {"*"},
		"UNDERLINE":     {"__"},
		"STRIKETHROUGH": {"~~"},
		"CODE":          {"`"},
		"SUPERSCRIPT":   {"<sup>", "</sup>"},
		"SUBSCRIPT":     {"<sub>", "</sub>"},
		"CODE-BLOCK":    {"```\n", "\n```"},
		"BLOCKQUOTE":    {"> ", ""},
	}
}

// DefaultBlockTypes returns the block-type prefix table.
func DefaultBlockTypes() map[string]string {
	return map[string]string{
		"unstyled":            "",
		"header-one":          "# ",
		"header-two":          "## ",
		"header-three":        "### ",
		"header-four":         "#### ",
		"header-five":         "##### ",
		"header-six":          "###### ",
		"unordered-list-item": "- ",
		"ordered-list-item":   "1. ",
		"blockquote":          "> ",
		"code":                "    ",
	}
}

// IsListType reports whether blocks of this type take depth indentation.
func IsListType(blockType string) bool {
	return blockType == "unordered-list-item" || blockType == "ordered-list-item"
}
