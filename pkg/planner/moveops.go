package planner

import (
	"iter"
	"path/filepath"

	"github.com/pcameron/photodater/pkg/utils"
)

/**************************************************************************************************
** Operations returns the planned copy operations as a lazy, restartable sequence. Nothing
** is materialized up front; ranging over the result twice yields the same operations in
** the same order. Buckets are visited in ascending (directory, stem) order, basenames in
** sequence-letter order and extensions in their canonical lexicographic order. The
** extension set itself carries no intrinsic order; the sort here is what makes the output
** deterministic.
**
** @return iter.Seq[MoveOp] - One operation per (basename, extension) pair
**************************************************************************************************/
func (p *Plan) Operations() iter.Seq[MoveOp] {
	return func(yield func(MoveOp) bool) {
		for _, key := range utils.SortedKeys(p.Buckets) {
			b := p.Buckets[key]
			for i, basename := range b.Basenames {
				letter := string(utils.SequenceLetters[i])
				for _, ext := range p.Groups[basename].Sorted() {
					op := MoveOp{
						From: basename + ext,
						To:   filepath.Join(b.Dir, b.Stem+letter+ext),
					}
					if !yield(op) {
						return
					}
				}
			}
		}
	}
}

/**************************************************************************************************
** CountOperations returns the number of operations the plan will emit, without holding
** them all in memory.
**
** @return int - Total (basename, extension) pairs across all buckets
**************************************************************************************************/
func (p *Plan) CountOperations() int {
	n := 0
	for _, b := range p.Buckets {
		for _, basename := range b.Basenames {
			n += len(p.Groups[basename])
		}
	}
	return n
}
