package draftmd

import (
	"sync"

	"github.com/riverfjs/draftmd-go/internal/types"
)

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton):
// default style tokens and block prefixes, single-newline block
// separators, real newlines, raw CSS styles disabled.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = &Config{}
	})
	return defaultConfig
}

// DefaultHashConfig returns the default hashtag detection config
// (trigger "#", separator " ").
func DefaultHashConfig() HashConfig {
	return types.DefaultHashConfig()
}
