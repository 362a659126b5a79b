package dynarray

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/teenjuna/dynarray/growth"
)

// DefaultCapacity is the capacity of a sequence created without [Config.Capacity].
const DefaultCapacity = 16

// Config is a configuration of a [Sequence]. It can be changed only by [ConfigFunc]s passed to
// [New] or [NewFunc].
type Config struct {
	capacity   int
	growth     growth.Policy
	prometheus *prometheusConfig
}

type prometheusConfig struct {
	registerer prometheus.Registerer
	namespace  string
	subsystem  string
}

type ConfigFunc = func(c *Config)

// Capacity sets the initial capacity of the sequence. The backing buffer is allocated with exactly
// this many slots. A negative value makes the constructor return [ErrInvalidArgument].
func (c *Config) Capacity(capacity int) {
	c.capacity = capacity
}

// Growth sets the policy used to compute a new capacity when the sequence runs out of spare slots.
func (c *Config) Growth(policy growth.Policy) {
	if policy == nil {
		panic("growth policy can't be nil")
	}
	c.growth = policy
}

// Prometheus enables metrics of the sequence. If registerer is nil, the metrics are collected but
// not registered.
//
// Metrics are registered by the constructor once per sequence, so two sequences sharing a
// registerer need different namespaces or subsystems.
func (c *Config) Prometheus(registerer prometheus.Registerer, namespace, subsystem string) {
	c.prometheus = &prometheusConfig{
		registerer: registerer,
		namespace:  namespace,
		subsystem:  subsystem,
	}
}

func newConfig(configFuncs ...ConfigFunc) *Config {
	c := &Config{}
	c.Capacity(DefaultCapacity)
	c.Growth(growth.Doubling())
	for _, cf := range configFuncs {
		if cf != nil {
			cf(c)
		}
	}
	return c
}
