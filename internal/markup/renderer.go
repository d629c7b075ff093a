// Package markup composes sections and style runs into the final
// markdown/HTML-hybrid output and assembles blocks into a document.
package markup

import (
	"strings"

	"github.com/riverfjs/draftmd-go/internal/types"
)

// Renderer renders one document with a fixed configuration. All state is
// scoped to a single Render call; nothing persists between documents.
type Renderer struct {
	cfg         *types.Config
	hash        types.HashConfig
	styleTokens map[string][]string
	blockTypes  map[string]string
	transform   types.EntityTransform
	entityMap   map[int]types.Entity
}

// NewRenderer merges the default style-token and block-type tables with
// the configuration's overrides. A nil cfg means defaults throughout.
func NewRenderer(cfg *types.Config, hash types.HashConfig, transform types.EntityTransform) *Renderer {
	if cfg == nil {
		cfg = &types.Config{}
	}
	styleTokens := types.DefaultStyleTokens()
	for name, tokens := range cfg.CustomStyleTransform {
		styleTokens[name] = tokens
	}
	blockTypes := types.DefaultBlockTypes()
	for name, prefix := range cfg.BlockTypesMapping {
		blockTypes[name] = prefix
	}
	return &Renderer{
		cfg:         cfg,
		hash:        types.MergeHashConfig(hash),
		styleTokens: styleTokens,
		blockTypes:  blockTypes,
		transform:   transform,
	}
}

// Render converts the whole content state to a single string. Blocks are
// rendered in input order; an error from any block aborts the conversion
// with no partial output.
func (r *Renderer) Render(state *types.ContentState) (string, error) {
	if state == nil || len(state.Blocks) == 0 {
		return "", nil
	}
	r.entityMap = state.EntityMap

	var sb strings.Builder
	for i := range state.Blocks {
		rendered, err := r.RenderBlock(&state.Blocks[i])
		if err != nil {
			return "", err
		}
		sb.WriteString(rendered)
	}
	return sb.String(), nil
}
