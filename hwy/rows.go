package hwy

import "iter"

// RowRange is the set of rows a shard owns: Start, Start+Step, Start+2*Step,
// ... up to but excluding End.
type RowRange struct {
	Start int
	End   int
	Step  int
}

// CyclicRows returns the rows owned by core coreID when m rows are dealt
// round-robin across nPE cores. A non-positive nPE is treated as 1.
func CyclicRows(coreID, nPE, m int) RowRange {
	if nPE <= 0 {
		nPE = 1
	}
	return RowRange{Start: coreID, End: m, Step: nPE}
}

// AllRows returns a range covering [0, m) with unit step.
func AllRows(m int) RowRange {
	return RowRange{Start: 0, End: m, Step: 1}
}

// Partition returns the row ranges of every core when m rows are dealt
// across nPE cores. The ranges are disjoint and their union is [0, m).
func Partition(m, nPE int) []RowRange {
	if nPE <= 0 {
		nPE = 1
	}
	ranges := make([]RowRange, nPE)
	for c := range nPE {
		ranges[c] = CyclicRows(c, nPE, m)
	}
	return ranges
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int {
	step := max(r.Step, 1)
	start := max(r.Start, 0)
	if start >= r.End {
		return 0
	}
	return (r.End - start + step - 1) / step
}

// All iterates the rows of the range in increasing order.
func (r RowRange) All() iter.Seq[int] {
	step := max(r.Step, 1)
	return func(yield func(int) bool) {
		for m := max(r.Start, 0); m < r.End; m += step {
			if !yield(m) {
				return
			}
		}
	}
}
