package draftmd

// ConvertOptions holds options for a conversion call.
type ConvertOptions struct {
	Config          *Config
	HashConfig      HashConfig
	EntityTransform EntityTransform
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom render configuration.
func WithConfig(config *Config) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithHashConfig overrides hashtag detection. Unset fields keep their
// defaults (trigger "#", separator " ").
func WithHashConfig(hash HashConfig) Option {
	return func(opts *ConvertOptions) {
		opts.HashConfig = hash
	}
}

// WithEntityTransform sets a custom entity renderer. It is consulted
// before the built-in entity rendering and wins whenever it returns a
// defined string.
func WithEntityTransform(transform EntityTransform) Option {
	return func(opts *ConvertOptions) {
		opts.EntityTransform = transform
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
