package dotconf

import (
	"io"

	"github.com/0xalexb/dotconf/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithStore loads the configuration document at path at startup and provides the
// resulting *config.Store to the container. The store logs through the app logger.
func WithStore(path string, opts ...config.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, NewStoreModule(path, opts...))
	}
}

// WithSaveOnStop saves the store provided by WithStore when the application stops,
// so changes made while running reach the file. It requires WithStore.
func WithSaveOnStop() Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fx.Invoke(registerSaveOnStop))
	}
}

// WithSection provides *T decoded from the section at path of the provided store,
// with defaults and validation applied. It requires WithStore.
func WithSection[T any](target *T, path string) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fx.Provide(config.Provider(target, path)))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log format: "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput sets where logs are written. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
