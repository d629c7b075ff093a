package markup

import (
	"fmt"
	"strconv"
)

// renderEntity renders text annotated by the entity with the given key.
// A caller-supplied transform wins whenever it returns a defined string,
// including for entity types the built-ins do not know. Unknown entity
// keys are a defined failure, not a panic.
func (r *Renderer) renderEntity(key int, text string) (string, error) {
	entity, ok := r.entityMap[key]
	if !ok {
		return "", fmt.Errorf("unknown entity reference %d", key)
	}
	if r.transform != nil {
		if out, defined := r.transform(entity, text); defined {
			return out, nil
		}
	}

	switch entity.Type {
	case "LINK", "MENTION":
		return fmt.Sprintf("[%s](%s)", text, dataString(entity.Data, "url")), nil
	case "IMAGE":
		return fmt.Sprintf("![%s](%s)", dataString(entity.Data, "alt"), dataString(entity.Data, "src")), nil
	case "EMBEDDED_LINK":
		return fmt.Sprintf(
			`<iframe width="%s" height="%s" src="%s" frameBorder="0"></iframe>`,
			dataString(entity.Data, "width"),
			dataString(entity.Data, "height"),
			dataString(entity.Data, "src"),
		), nil
	}
	// Other entity types are markup-transparent.
	return text, nil
}

// dataString reads an entity data field as a string. Numbers decoded from
// JSON arrive as float64; widths like 560 must not render as "560.000000".
func dataString(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
