package stylecache

type props struct {
	seed      uint64
	maxProbes int
	hash      func(seed uint64, probe int, canonical []byte) uint64
}

func defaultProps() props {
	return props{
		maxProbes: DefaultMaxProbes,
		hash:      fingerprint,
	}
}

// Option is a type to help initializing caches at creation time.
type Option struct {
	config func(props) props
}

// WithSeed sets the seed for fingerprinting. Caches with different seeds
// generate different class names for the same Style. Default is 0.
//
// Use it to keep class names of independent caches apart:
//
//	cache := stylecache.New(sink, stylecache.WithSeed(42))
func WithSeed(seed uint64) Option {
	return Option{config: func(p props) props {
		p.seed = seed
		return p
	}}
}

// WithMaxProbes sets the number of fingerprints tried for a Style before
// Fetch gives up with ErrCollision. Values < 1 are treated as 1.
func WithMaxProbes(n int) Option {
	return Option{config: func(p props) props {
		p.maxProbes = max(n, 1)
		return p
	}}
}
