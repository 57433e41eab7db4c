package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fvgeom/fvgeom/utils"
)

func TestMaskedIndex(t *testing.T) {
	{
		mi := NewMaskedIndex(utils.Index{5, 0, 7}).SetMasked(1)
		assert.Equal(t, 3, mi.Len())
		assert.Equal(t, 2, mi.Count())

		v, ok := mi.At(0)
		assert.True(t, ok)
		assert.Equal(t, 5, v)
		_, ok = mi.At(1)
		assert.False(t, ok)
		assert.True(t, mi.IsMasked(1))
		assert.False(t, mi.IsMasked(2))
	}
	// a masked zero is distinguishable from neighbor 0
	{
		mi := NewMaskedIndex(utils.Index{0, 0}).SetMasked(1)
		v, ok := mi.At(0)
		assert.True(t, ok)
		assert.Equal(t, 0, v)
		_, ok = mi.At(1)
		assert.False(t, ok)
	}
	// Filled substitutes per-position values only under the mask
	{
		mi := NewMaskedIndex(utils.Index{9, 9, 9}).SetMasked(0).SetMasked(2)
		assert.Equal(t, utils.Index{0, 9, 2}, mi.Filled(func(i int) int { return i }))
	}
	// Copy does not alias the source
	{
		mi := NewMaskedIndex(utils.Index{1, 2})
		cp := mi.Copy().SetMasked(0)
		assert.False(t, mi.IsMasked(0))
		assert.True(t, cp.IsMasked(0))
	}
}
