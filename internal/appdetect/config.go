package appdetect

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/webtune/webtune/internal/provider"
	"github.com/webtune/webtune/internal/provider/react"
)

// allProviders lists the registered framework providers. Order determines
// precedence when two providers both claim a directory.
var allProviders = []provider.Provider{
	react.New(),
}

// ProviderByName returns the registered provider with the given name.
func ProviderByName(name string) (provider.Provider, bool) {
	for _, p := range allProviders {
		if p.Name() == name {
			return p, true
		}
	}

	return nil, false
}

// Providers returns the registered framework providers in precedence order.
func Providers() []provider.Provider {
	return allProviders
}

func newConfig(options ...DetectOption) detectConfig {
	c := detectConfig{
		defaultExcludePatterns: []string{
			"**/node_modules",
			"**/[Dd]ist",
			"**/[Bb]uild",
			"**/[Oo]ut",
			"**/coverage",
			"**/vendor",
		},
	}

	for _, opt := range options {
		c = opt.apply(c)
	}

	if c.defaultExcludePatterns != nil {
		c.ExcludePatterns = append(c.defaultExcludePatterns, c.ExcludePatterns...)
	}

	setProviders(&c)
	return c
}

func setProviders(c *detectConfig) {
	if c.IncludeFrameworks == nil {
		c.providers = allProviders
		return
	}

	include := map[string]bool{}
	for _, name := range c.IncludeFrameworks {
		include[name] = true
	}

	c.providers = []provider.Provider{}
	for _, p := range allProviders {
		if include[p.Name()] {
			c.providers = append(c.providers, p)
		}
	}
}

// DetectOption configures a Detect call.
type DetectOption interface {
	apply(detectConfig) detectConfig
}

type detectConfig struct {
	// Exclude patterns for directories scanned, matched against the
	// slash-separated path relative to the scan root.
	// By default, build and package cache directories like **/dist and
	// **/node_modules are excluded, as are hidden directories.
	// Set overrideDefaults in WithExcludePatterns(patterns, overrideDefaults)
	// to choose whether to override defaults.
	ExcludePatterns []string

	// Framework providers to run. If unset, all registered providers run.
	IncludeFrameworks []string

	// Internal usage fields
	defaultExcludePatterns []string
	providers              []provider.Provider
}

func (c *detectConfig) excluded(rel string) bool {
	for _, pattern := range c.ExcludePatterns {
		// An invalid pattern matches nothing.
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
	}

	return false
}

type excludePatternsOptions struct {
	patterns         []string
	overrideDefaults bool
}

func (o *excludePatternsOptions) apply(c detectConfig) detectConfig {
	if o.overrideDefaults {
		c.defaultExcludePatterns = nil
	}

	c.ExcludePatterns = append(c.ExcludePatterns, o.patterns...)
	return c
}

// WithExcludePatterns adds exclude patterns for directories scanned.
func WithExcludePatterns(patterns []string, overrideDefaults bool) DetectOption {
	return &excludePatternsOptions{patterns, overrideDefaults}
}

type includeFrameworks struct {
	names []string
}

func (o *includeFrameworks) apply(c detectConfig) detectConfig {
	c.IncludeFrameworks = append(c.IncludeFrameworks, o.names...)
	return c
}

// WithFrameworks restricts detection to the named framework providers.
func WithFrameworks(names ...string) DetectOption {
	return &includeFrameworks{names}
}
