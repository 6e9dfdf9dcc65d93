package shuffle

import (
	mrand "math/rand"
	"time"

	"github.com/jonboulle/clockwork"
)

// Source is a pseudo-random generator handle.  It is owned by the
// caller and seeded exactly once per run; Sample never reseeds it.
// Not suitable for anything cryptographic.
type Source interface {
	// Seed resets the generator state.
	Seed(seed uint64)
	// Next returns a uniform value in [0, Max()].
	Next() uint64
	// Max is the largest value Next can return.  Implementations may
	// have a Max as small as 32767; Sample copes.
	Max() uint64
}

// mathSource adapts math/rand to Source.  Int31 gives us a 31-bit
// draw, the same shape as a libc rand().
type mathSource struct {
	r *mrand.Rand
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) Source {
	return &mathSource{r: mrand.New(mrand.NewSource(int64(seed)))}
}

func (s *mathSource) Seed(seed uint64) {
	s.r.Seed(int64(seed))
}

func (s *mathSource) Next() uint64 {
	return uint64(s.r.Int31())
}

func (s *mathSource) Max() uint64 {
	return 1<<31 - 1
}

// bootstrap pins a monotonic reading at process start.  Mixing the
// elapsed monotonic time into the seed keeps it moving even when the
// wall clock steps backwards mid-run.
var bootstrap = time.Now()

// SeedMicros returns a microsecond-resolution seed for a Source: a
// wall-clock microsecond reading plus the elapsed monotonic time.  The
// wall component differs between process invocations (two runs
// starting within the same microsecond still collide); the monotonic
// component keeps the seed moving between calls within one process.
func SeedMicros(clock clockwork.Clock) uint64 {
	now := clock.Now()
	return uint64(now.UnixMicro()) + uint64(now.Sub(bootstrap).Microseconds())
}
