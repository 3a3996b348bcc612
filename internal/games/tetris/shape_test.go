package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func TestFourRotationsAreIdentity(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			base := k.BaseShape()
			s := base
			for range 4 {
				s = s.Rotate()
			}
			assert.True(t, s.Equal(base), "four turns of %s should restore the shape", k)
		})
	}
}

func TestKindColorsAreDistinct(t *testing.T) {
	seen := map[core.Color]Kind{}
	for _, k := range Kinds {
		c := k.Color()
		assert.NotEqual(t, EmptyColor, c, "%s shares the empty cell color", k)
		assert.NotEqual(t, Empty, c, "%s has no color", k)
		if prev, ok := seen[c]; ok {
			t.Errorf("%s and %s share color %v", prev, k, c)
		}
		seen[c] = k
	}
}

func TestRotateSwapsDimensionsWithoutMutating(t *testing.T) {
	for _, k := range Kinds {
		base := k.BaseShape()
		before := base.Clone()
		r := base.Rotate()

		assert.Equal(t, base.Height(), r.Width(), k.String())
		assert.Equal(t, base.Width(), r.Height(), k.String())
		assert.True(t, base.Equal(before), "%s: rotate must not modify its input", k)
	}
}

func TestRotateClockwise(t *testing.T) {
	// .#.      #.
	// ###  ->  ##
	//          #.
	got := KindT.BaseShape().Rotate()
	assert.True(t, got.Equal(parseShape("#.", "##", "#.")), "got %v", got)

	// ..#      #.
	// ###  ->  #.
	//          ##
	got = KindL.BaseShape().Rotate()
	assert.True(t, got.Equal(parseShape("#.", "#.", "##")), "got %v", got)

	got = KindI.BaseShape().Rotate()
	assert.True(t, got.Equal(parseShape("#", "#", "#", "#")))
}

func TestBaseShapesHaveFourCells(t *testing.T) {
	for _, k := range Kinds {
		n := 0
		k.BaseShape().Cells(func(int, int) bool {
			n++
			return true
		})
		assert.Equal(t, 4, n, k.String())
	}
}

func TestBaseShapeReturnsCopy(t *testing.T) {
	s := KindO.BaseShape()
	s[0][0] = false
	assert.True(t, KindO.BaseShape()[0][0], "base table must not be shared")
}

func TestKindColorsAreDistinctByValue(t *testing.T) {
	seen := map[any]Kind{}
	for _, k := range Kinds {
		c := k.Color()
		assert.NotEqual(t, Empty, c, k.String())
		if prev, ok := seen[c]; ok {
			t.Errorf("%s and %s share color %v", prev, k, c)
		}
		seen[c] = k
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Z", KindZ.String())
	assert.Equal(t, "?", Kind(9).String())
}

func TestSequencePickerCycles(t *testing.T) {
	p := NewSequencePicker(KindS, KindZ)
	assert.Equal(t, []Kind{KindS, KindZ, KindS}, []Kind{p.Next(), p.Next(), p.Next()})
	assert.Equal(t, KindI, NewSequencePicker().Next())
}

func TestRandomPickerIsDeterministicAndCoversAllKinds(t *testing.T) {
	a, b := NewRandomPicker(7), NewRandomPicker(7)
	seen := map[Kind]int{}
	for range 700 {
		k := a.Next()
		assert.Equal(t, k, b.Next())
		seen[k]++
	}
	assert.Len(t, seen, KindCount)
}
