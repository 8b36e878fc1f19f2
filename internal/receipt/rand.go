package receipt

import "math/rand/v2"

// globalRand draws from the math/rand/v2 top-level source, which is safe
// for concurrent use and seeded at startup.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

var defaultRand IntNer = globalRand{}
