package config

// MemoCfg configures the in-memory memo of finished estimates.
// A run is fully determined by (kind, trials, seed, block size, integrand),
// so repeated requests can be answered without sampling again.
type MemoCfg struct {
	// Shards defines how many independently locked segments the memo uses.
	Shards int `yaml:"shards"`

	// Capacity is the maximum number of results kept per shard.
	// When a shard is full the oldest result is replaced.
	Capacity int `yaml:"capacity"`
}

func (cfg *MemoCfg) Enabled() bool {
	return cfg != nil
}
