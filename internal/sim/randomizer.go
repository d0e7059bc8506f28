package sim

// Policy selects how host seeds are mapped to piece kinds.
type Policy int

const (
	// PolicyBag deals all seven kinds once per bag. Each seed picks one of
	// the kinds still left in the bag.
	PolicyBag Policy = iota

	// PolicyUniform maps each seed straight to a kind.
	PolicyUniform
)

// String returns the policy name used in configuration files.
func (p Policy) String() string {
	switch p {
	case PolicyBag:
		return "bag"
	case PolicyUniform:
		return "uniform"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a configuration name to a Policy.
func ParsePolicy(name string) (Policy, bool) {
	switch name {
	case "bag", "":
		return PolicyBag, true
	case "uniform":
		return PolicyUniform, true
	default:
		return PolicyBag, false
	}
}

// randomizer consumes exactly one seed per pick.
type randomizer struct {
	policy Policy
	bag    []byte // remaining kinds, host-allocated
	left   int
}

func newRandomizer(policy Policy, buf []byte) randomizer {
	r := randomizer{policy: policy, bag: buf[:KindCount]}
	r.refill()
	return r
}

func (r *randomizer) refill() {
	for i := range r.bag {
		r.bag[i] = byte(i)
	}
	r.left = len(r.bag)
}

func (r *randomizer) next(seed uint64) Kind {
	if r.policy == PolicyUniform {
		return Kind(seed % uint64(KindCount))
	}
	if r.left == 0 {
		r.refill()
	}
	i := int(seed % uint64(r.left))
	k := Kind(r.bag[i])
	r.left--
	r.bag[i] = r.bag[r.left]
	r.bag[r.left] = byte(k)
	return k
}
