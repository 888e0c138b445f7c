package sched

// PolicyKind selects which Policy implementation NewPolicy constructs.
type PolicyKind int

const (
	PolicyRoundRobin PolicyKind = iota
	PolicyStaticPriority
	PolicyFair
	PolicyAEDF
	PolicyEDF
	PolicyRateMonotonic
)

// String renders the kind for logs and CLI flags.
func (k PolicyKind) String() string {
	switch k {
	case PolicyRoundRobin:
		return "round-robin"
	case PolicyStaticPriority:
		return "priority"
	case PolicyFair:
		return "fair"
	case PolicyAEDF:
		return "aedf"
	case PolicyEDF:
		return "edf"
	case PolicyRateMonotonic:
		return "rm"
	default:
		return "unknown"
	}
}

// Config selects and tunes the active scheduling policy.
type Config struct {
	Kind PolicyKind

	// Quantum is the round-robin time slice, in ticks.
	Quantum uint64

	// DeadlineMissLog controls whether aedf also logs a missed deadline
	// through slog; the miss is counted and the task still scheduled
	// either way. defaultConfig sets it to true, but NewPolicy does not
	// fill it in, so a zero Config leaves it false.
	DeadlineMissLog bool
}

func defaultConfig() Config {
	return Config{
		Kind:            PolicyFair,
		Quantum:         10,
		DeadlineMissLog: true,
	}
}

func (c Config) normalize() Config {
	if c.Quantum == 0 {
		c.Quantum = defaultConfig().Quantum
	}
	return c
}

// NewPolicy builds the Policy named by cfg.Kind.
func NewPolicy(cfg Config) Policy {
	cfg = cfg.normalize()
	switch cfg.Kind {
	case PolicyRoundRobin:
		return &RoundRobinPolicy{Quantum: cfg.Quantum}
	case PolicyStaticPriority:
		return &StaticPriorityPolicy{}
	case PolicyAEDF:
		return &AEDFPolicy{LogMisses: cfg.DeadlineMissLog}
	case PolicyEDF:
		return &EDFPolicy{}
	case PolicyRateMonotonic:
		return &RateMonotonicPolicy{}
	case PolicyFair:
		fallthrough
	default:
		return &FairPolicy{}
	}
}
