package sched

// NiceZeroWeight is the CFS weight assigned to nice value 0; every other
// nice level scales this by roughly 1.25 per step, the table CFS itself
// uses (kernel/sched/core.c's sched_prio_to_weight).
const NiceZeroWeight = 1024

// niceToWeight maps nice values in [-20, 19] to a fixed-point weight.
// Indexed by nice+20.
var niceToWeight = [40]uint64{
	/* -20 */ 88761, 71755, 56483, 46273, 36291,
	/* -15 */ 29154, 23254, 18705, 14949, 11916,
	/* -10 */ 9548, 7620, 6100, 4904, 3906,
	/* -5  */ 3121, 2501, 1991, 1586, 1277,
	/*  0  */ 1024, 820, 655, 526, 423,
	/*  5  */ 335, 272, 215, 172, 137,
	/*  10 */ 110, 87, 70, 56, 45,
	/*  15 */ 36, 29, 23, 18, 15,
}

// weightForNice returns the fixed-point scheduling weight for a nice
// value, clamping out-of-range input to the table's bounds.
func weightForNice(nice int) uint64 {
	if nice < -20 {
		nice = -20
	}
	if nice > 19 {
		nice = 19
	}
	return niceToWeight[nice+20]
}
