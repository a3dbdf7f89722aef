package cmd

// Options holds the shared command-line options for the dtcalc CLI.
type Options struct {
	Color     string // auto, always, never
	Verbosity int
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithColor sets the color mode (auto, always, never).
func WithColor(mode string) Option {
	return func(o *Options) {
		o.Color = mode
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}
