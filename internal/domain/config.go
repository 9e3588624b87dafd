package domain

// Config is the merged file and environment configuration.
type Config struct {
	DefaultLanguage string `yaml:"default_language"`
	DefaultCategory string `yaml:"default_category"`
	CacheTTL        string `yaml:"cache_ttl"`
	Quiet           bool   `yaml:"quiet"`
	MinWidth        int    `yaml:"min_width"`

	// APIBase overrides the per-language Wikipedia host. It is set from
	// TIMELY_API_BASE only, never from the config file; it exists so
	// integration tests can point the client at a local server.
	APIBase string `yaml:"-"`
}
