package windowkit

// Config is the configuration of a window iterator.
// A Config value implements Option, so it can be passed to the constructors directly.
type Config struct {
	// Lookbehind is how many historical elements the window retains behind the current position.
	Lookbehind int
	// Lookahead is how many elements the window keeps fetched ahead of the current position.
	Lookahead int

	stops []func()
}

func (c Config) Configure(t *Config) {
	if c.Lookbehind != 0 {
		t.Lookbehind = c.Lookbehind
	}
	if c.Lookahead != 0 {
		t.Lookahead = c.Lookahead
	}
	t.stops = append(t.stops, c.stops...)
}

// Option configures how a window iterator is constructed.
type Option interface {
	Configure(*Config)
}

type optionFunc func(*Config)

func (fn optionFunc) Configure(c *Config) { fn(c) }

// WithLookbehind sets how many historical elements the window retains.
func WithLookbehind(n int) Option {
	return optionFunc(func(c *Config) { c.Lookbehind = n })
}

// WithLookahead sets how many elements the window keeps fetched ahead.
func WithLookahead(n int) Option {
	return optionFunc(func(c *Config) { c.Lookahead = n })
}

// WithStop registers a function that runs once when the iterator is closed.
// Use it to tie the cleanup of a FromPull source to the iterator's lifetime.
func WithStop(fn func()) Option {
	return optionFunc(func(c *Config) { c.stops = append(c.stops, fn) })
}
