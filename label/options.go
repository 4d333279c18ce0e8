package label

import "github.com/neonkingfr/plymouth/sysfont"

// Option configures label creation.
type Option func(*config)

// config holds configuration for New.
type config struct {
	resolver     sysfont.Resolver
	fallbackPath string
}

// defaultConfig returns the default creation configuration.
func defaultConfig() config {
	return config{
		resolver:     sysfont.Match{},
		fallbackPath: sysfont.Fallback,
	}
}

// WithResolver sets the font resolver consulted for the label font.
// The default queries the system font index.
func WithResolver(r sysfont.Resolver) Option {
	return func(c *config) {
		c.resolver = r
	}
}

// WithFallbackPath sets the font file used when the resolver fails or its
// result cannot be loaded.
func WithFallbackPath(path string) Option {
	return func(c *config) {
		c.fallbackPath = path
	}
}
