package tsarray

// Option configures an array at construction time.
type Option = func(*config)

// WithLengthHint biases capacity planning toward an expected
// steady-state length, avoiding repeated reallocation when the typical
// size is known in advance.
func WithLengthHint(hint int) Option {
	if hint < 0 {
		panic("length hint can't be < 0")
	}
	return func(c *config) {
		c.hint = hint
	}
}

// WithMetrics attaches Prometheus instrumentation built from cfg.
func WithMetrics(cfg *MetricsConfig) Option {
	if cfg == nil {
		panic("metrics config can't be nil")
	}
	return func(c *config) {
		c.metrics = cfg.metrics()
	}
}

type config struct {
	hint    int
	metrics *metrics
}

func newConfig(options ...Option) *config {
	cfg := config{}
	for _, opt := range options {
		opt(&cfg)
	}
	return &cfg
}
