// Package textutil provides UTF-16 code-unit helpers.
//
// Draft.js measures entity and style range offsets in UTF-16 code units,
// not Go string bytes or runes. Characters outside the BMP
// (codepoint > 0xFFFF) take 2 code units (a surrogate pair); all others
// take 1. The converter therefore works on []uint16 views of block text.
package textutil

import (
	"strings"
	"unicode/utf16"
)

// Len returns the length of text measured in UTF-16 code units.
func Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// Encode returns the UTF-16 code units of text.
func Encode(text string) []uint16 {
	return utf16.Encode([]rune(text))
}

// Decode returns the string represented by the code units.
func Decode(units []uint16) string {
	if len(units) == 0 {
		return ""
	}
	return string(utf16.Decode(units))
}

// Index returns the code-unit index of the first occurrence of needle in
// haystack at or after from, or -1 if there is none.
func Index(haystack, needle []uint16, from int) int {
	if len(needle) == 0 || from < 0 {
		return -1
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		if hasPrefixAt(haystack, needle, i) {
			return i
		}
	}
	return -1
}

// HasPrefix reports whether units starts with prefix.
func HasPrefix(units, prefix []uint16) bool {
	return len(prefix) > 0 && hasPrefixAt(units, prefix, 0)
}

func hasPrefixAt(haystack, needle []uint16, at int) bool {
	if at+len(needle) > len(haystack) {
		return false
	}
	for j := range needle {
		if haystack[at+j] != needle[j] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether s is empty or contains only whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
