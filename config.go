package edge

import (
	"runtime"
	"time"

	"github.com/dmitrymomot/edge/core/config"
)

// Config holds server configuration with environment variable support.
// Zero Listeners or Workers resolve to half the available parallelism,
// minimum one, splitting hardware between accept loops and handler
// workers.
type Config struct {
	Addr string `env:"EDGE_ADDR" envDefault:":3000"`

	Listeners  int `env:"EDGE_LISTENERS" envDefault:"0"`
	Workers    int `env:"EDGE_WORKERS" envDefault:"0"`
	QueueDepth int `env:"EDGE_QUEUE_DEPTH" envDefault:"256"`

	ReadTimeout time.Duration `env:"EDGE_READ_TIMEOUT" envDefault:"15s"`
	// WriteTimeout stays disabled by default: it would cut off
	// long-lived streaming responses.
	WriteTimeout    time.Duration `env:"EDGE_WRITE_TIMEOUT" envDefault:"0"`
	IdleTimeout     time.Duration `env:"EDGE_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"EDGE_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	MaxHeaderBytes int `env:"EDGE_MAX_HEADER_BYTES" envDefault:"1048576"`

	ViewsDir string `env:"EDGE_VIEWS_DIR" envDefault:"views"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Addr:            ":3000",
		QueueDepth:      256,
		ReadTimeout:     15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		MaxHeaderBytes:  1 << 20,
		ViewsDir:        "views",
	}
}

// LoadConfig reads the configuration from the environment, falling back
// to the documented defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// threadCount resolves a configured thread-group size, defaulting to
// half the available parallelism with a floor of one.
func threadCount(configured int) int {
	if configured > 0 {
		return configured
	}
	return max(runtime.NumCPU()/2, 1)
}
