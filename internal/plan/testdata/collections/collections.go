package collections

import (
	"math/rand"
	randv2 "math/rand/v2"
	"time"
)

//lit:vec
type Stack struct {
	items []int
}

func NewStack() *Stack { return &Stack{} }

func (s *Stack) Push(v int) { s.items = append(s.items, v) }

//lit:vec-front
type Deque struct {
	items []string
}

func NewDeque() Deque { return Deque{} }

func (d *Deque) PushFront(v string) { d.items = append([]string{v}, d.items...) }

//lit:set
type TagSet struct {
	tags map[string]struct{}
}

func NewTagSet() *TagSet { return &TagSet{tags: make(map[string]struct{})} }

func (s *TagSet) Insert(tags ...string) bool {
	added := false

	for _, tag := range tags {
		if _, ok := s.tags[tag]; !ok {
			s.tags[tag] = struct{}{}
			added = true
		}
	}

	return added
}

//lit:map
type Schedule struct {
	at map[time.Time]time.Duration
}

func NewSchedule() *Schedule { return &Schedule{at: make(map[time.Time]time.Duration)} }

func (s *Schedule) Insert(at time.Time, d time.Duration) { s.at[at] = d }

//lit:map
type Sources struct {
	v1 []*rand.Rand
	v2 []*randv2.Rand
}

func NewSources() *Sources { return &Sources{} }

func (s *Sources) Insert(a *rand.Rand, b *randv2.Rand) {
	s.v1 = append(s.v1, a)
	s.v2 = append(s.v2, b)
}

//lit:vec
type Empty struct{}
