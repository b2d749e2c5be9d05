package config

import (
	"go.uber.org/zap"

	"github.com/muurk/daikinbridge/internal/climate"
	"github.com/muurk/daikinbridge/internal/transport"
)

// NewClient builds an adapter client from the host, timeout and retry settings
func (c *Config) NewClient(log *zap.Logger) *transport.Client {
	client := transport.NewClient(c.Host)
	if c.Timeout > 0 {
		client.SetTimeout(c.Timeout)
	}
	client.MaxRetries = c.Retries
	client.SetLogger(log)
	return client
}

// NewController builds a controller that reaches the adapter through t
func (c *Config) NewController(t climate.Transport, log *zap.Logger) *climate.Controller {
	return climate.NewController(t,
		climate.WithName(c.Name),
		climate.WithHost(transport.NormalizeBaseURL(c.Host)),
		climate.WithThreshold(c.CoolingHeatingThreshold),
		climate.WithMissingValue(c.MissingValue),
		climate.WithLogger(log),
	)
}
