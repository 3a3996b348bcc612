package tetris

import "math/rand"

// PiecePicker chooses the kind of each newly spawned piece.
type PiecePicker interface {
	Next() Kind
}

// RandomPicker draws kinds uniformly from a seeded source.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker creates a uniform picker with a deterministic seed.
func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen kind.
func (p *RandomPicker) Next() Kind {
	return Kinds[p.rng.Intn(KindCount)]
}

// SequencePicker replays a fixed list of kinds, cycling when exhausted.
// Useful for replays and scripted demos.
type SequencePicker struct {
	kinds []Kind
	next  int
}

// NewSequencePicker creates a picker that yields kinds in order.
// An empty list always yields KindI.
func NewSequencePicker(kinds ...Kind) *SequencePicker {
	return &SequencePicker{kinds: kinds}
}

// Next returns the next kind in the sequence.
func (p *SequencePicker) Next() Kind {
	if len(p.kinds) == 0 {
		return KindI
	}
	k := p.kinds[p.next%len(p.kinds)]
	p.next++
	return k
}
