package mesh

import "github.com/fvgeom/fvgeom/utils"

// MaskedIndex is an index vector in which individual entries may be marked
// undefined. Adjacency queries use it at domain boundaries so that "no
// neighbor" can never be confused with a real entity ID such as 0.
type MaskedIndex struct {
	Values utils.Index
	Mask   []bool // true where the entry is undefined
}

func NewMaskedIndex(values utils.Index) (mi MaskedIndex) {
	return MaskedIndex{
		Values: values,
		Mask:   make([]bool, len(values)),
	}
}

func (mi MaskedIndex) Len() int { return len(mi.Values) }

// At returns the entry and whether it is defined.
func (mi MaskedIndex) At(i int) (val int, ok bool) {
	return mi.Values[i], !mi.Mask[i]
}

func (mi MaskedIndex) IsMasked(i int) bool { return mi.Mask[i] }

func (mi MaskedIndex) SetMasked(i int) MaskedIndex {
	mi.Mask[i] = true
	return mi
}

// Filled returns a plain index with every masked entry replaced by fill(i).
func (mi MaskedIndex) Filled(fill func(i int) int) (r utils.Index) {
	r = mi.Values.Copy()
	for i, masked := range mi.Mask {
		if masked {
			r[i] = fill(i)
		}
	}
	return
}

// Count returns the number of defined entries.
func (mi MaskedIndex) Count() (n int) {
	for _, masked := range mi.Mask {
		if !masked {
			n++
		}
	}
	return
}

func (mi MaskedIndex) Copy() (r MaskedIndex) {
	r = MaskedIndex{
		Values: mi.Values.Copy(),
		Mask:   make([]bool, len(mi.Mask)),
	}
	copy(r.Mask, mi.Mask)
	return
}
