package vox

type readConfig struct {
	limits Limits
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

type writeConfig struct {
	limits  Limits
	version int32
	pack    bool
	packSet bool
}

type WriteOption func(*writeConfig)

func WithWriteLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}

// WithVersion overrides the version integer written into the envelope.
func WithVersion(v int32) WriteOption {
	return func(c *writeConfig) { c.version = v }
}

// WithPackChunk controls whether a PACK chunk is written ahead of the model
// list. By default one is written only for multi-model documents, matching
// what MagicaVoxel itself emits.
func WithPackChunk(v bool) WriteOption {
	return func(c *writeConfig) { c.pack, c.packSet = v, true }
}
