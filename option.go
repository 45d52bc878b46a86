package polygonzkevm

import (
	"github.com/dtdang/polygonzkevm/logger"
	"github.com/dtdang/polygonzkevm/metrics"
	"github.com/dtdang/polygonzkevm/provider"
)

type Option func(*Ecosystem)

func WithLogger(l logger.Logger) Option {
	return func(e *Ecosystem) {
		e.logger = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(e *Ecosystem) {
		e.metrics = r
	}
}

// WithProviders injects the host's connection registry so transaction
// construction can default required confirmations from the active
// network.
func WithProviders(r provider.Registry) Option {
	return func(e *Ecosystem) {
		e.providers = r
	}
}
