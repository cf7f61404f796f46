package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// NewConfigBuilderFrom creates a ConfigBuilder that starts from a copy of cfg.
func NewConfigBuilderFrom(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFiftyMoveLimit sets the halfmove clock threshold.
func (b *ConfigBuilder) WithFiftyMoveLimit(limit uint32) *ConfigBuilder {
	b.cfg.Rules.FiftyMoveLimit = limit
	return b
}

// WithPawnMoveResetsClock controls whether pawn moves reset the halfmove clock.
func (b *ConfigBuilder) WithPawnMoveResetsClock(enabled bool) *ConfigBuilder {
	b.cfg.Rules.PawnMoveResetsClock = enabled
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log encoding.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithWorkers sets the number of batch analysis workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}
