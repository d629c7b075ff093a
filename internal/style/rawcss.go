package style

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// parseRawCSS interprets a style name that is a flat JSON object literal
// (e.g. `{"fontWeight":"bold"}`) as CSS declarations, camelCase property
// names converted to kebab-case. Token streaming keeps the author's
// property order; a map unmarshal would shuffle it. Anything that is not
// a flat object of scalar values is rejected, never an error.
func parseRawCSS(style string) (string, bool) {
	dec := json.NewDecoder(strings.NewReader(style))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return "", false
	}

	var b strings.Builder
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return "", false
		}
		key, ok := keyTok.(string)
		if !ok || key == "" {
			return "", false
		}
		valTok, err := dec.Token()
		if err != nil {
			return "", false
		}
		value, ok := scalarString(valTok)
		if !ok {
			return "", false
		}
		b.WriteString(camelToKebab(key))
		b.WriteByte(':')
		b.WriteString(value)
		b.WriteByte(';')
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return "", false
	}
	if _, err := dec.Token(); err != io.EOF { // trailing garbage
		return "", false
	}
	return b.String(), true
}

func scalarString(tok json.Token) (string, bool) {
	switch v := tok.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

func camelToKebab(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
