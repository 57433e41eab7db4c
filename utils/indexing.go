package utils

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

// NewRange produces [rmin, rmin+1, ..., rmax], an INCLUSIVE range.
func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1
	)
	if size < 0 {
		size = 0
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func NewIndexConst(N, val int) (r Index) {
	r = make(Index, N)
	for i := 0; i < N; i++ {
		r[i] = val
	}
	return
}

func (I Index) Copy() (r Index) {
	r = make(Index, len(I))
	copy(r, I)
	return
}

func (I Index) Add(val int) (r Index) {
	r = make(Index, len(I))
	for i, ival := range I {
		r[i] = val + ival
	}
	return r
}

func (I Index) Apply(f func(val int) int) (r Index) {
	r = make(Index, len(I))
	for i, val := range I {
		r[i] = f(val)
	}
	return
}

func (I Index) Contains(val int) bool {
	for _, ival := range I {
		if ival == val {
			return true
		}
	}
	return false
}
