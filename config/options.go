package config

import "log/slog"

// Option defines a function type for configuring a Store.
type Option func(*options)

type options struct {
	codec  Codec
	pinned bool
	logger *slog.Logger
}

// WithCodec sets the document codec, overriding the choice made from the file extension.
// The codec stays in use after SaveAs.
func WithCodec(codec Codec) Option {
	return func(opts *options) {
		opts.codec = codec
	}
}

// WithLogger sets the logger used for load, save and mutation events.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func applyOptions(path string, opts []Option) options {
	var cfg options

	for _, apply := range opts {
		apply(&cfg)
	}

	cfg.pinned = cfg.codec != nil
	if !cfg.pinned {
		cfg.codec = CodecFor(path)
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}
