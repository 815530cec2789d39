package stylecache

// WithHash replaces the fingerprint function, so tests can provoke collisions.
func WithHash(h func(seed uint64, probe int, canonical []byte) uint64) Option {
	return Option{config: func(p props) props {
		p.hash = h
		return p
	}}
}

var Fingerprint = fingerprint
