package generated

import (
	_ "embed"
	"math/rand/v2"
	stdtime "time"
)

//lit:vec
type Ticks struct{ at []stdtime.Time }

func NewTicks() *Ticks { return &Ticks{} }

func (t *Ticks) Push(at stdtime.Time) { t.at = append(t.at, at) }

var _ = rand.N[int]
