// Package shuffle implements the partial Fisher-Yates shuffle behind
// jumble: shuffle only as many slots as we intend to print.
package shuffle

// Interface is the slice access Sample needs.  lines.Sequence
// satisfies it; so does anything resembling sort.Interface.
type Interface interface {
	Len() int
	Swap(i, j int)
}

// Sample partially shuffles seq so that its last outlines slots hold a
// uniformly-ish random sample of the whole sequence, in random order.
// It walks from the tail, swapping each slot with a random earlier
// one, and stops after outlines swaps; the untouched prefix is left in
// arbitrary order.  outlines must be in [0, seq.Len()].
//
// The reduction r % active is deliberately the classic biased modulo.
// For counts approaching Max this skews low values; matching the
// behavior of every other shuf out there beats fixing it.
func Sample(seq Interface, outlines int, src Source) {
	active := seq.Len()
	max := src.Max()
	for outlines > 0 {
		r := src.Next()
		// Max can be as small as 32767.  If the active range is
		// bigger than one draw can cover, widen with a second draw.
		if uint64(active) > max {
			r ^= src.Next() << 15
		}
		i := int(r % uint64(active))
		active--
		seq.Swap(active, i)
		outlines--
	}
}
