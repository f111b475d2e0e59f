// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ir

import (
	"fmt"
	"strconv"
)

type (
	// endBound is the end of a range. It is either a resolved constant or
	// a symbolic reference substituted by a later lowering pass.
	endBound interface {
		endBound()

		// String representation of the bound.
		String() string
	}

	constantEnd int64
	indexEnd    Index
	operandEnd  OperandIndex
)

func (constantEnd) endBound() {}
func (indexEnd) endBound()    {}
func (operandEnd) endBound()  {}

func (e constantEnd) String() string { return strconv.FormatInt(int64(e), 10) }
func (e indexEnd) String() string    { return Index(e).String() }
func (e operandEnd) String() string  { return OperandIndex(e).String() }

// Range represents the iteration space of one loop dimension: a begin
// offset, an end bound, and an increment. The begin and the increment are
// always known integers. The end is either a resolved constant, a reference
// to another dimension of the nest, or a reference to a dynamically-shaped
// operand position. The end variant is fixed at construction.
//
// Querying a numeric property of a range whose end is still symbolic is a
// contract violation and panics: ranges must be resolved before such queries.
type Range struct {
	begin     int64
	increment int64
	end       endBound
}

func newRange(begin int64, end endBound, increment int64) Range {
	if increment == 0 {
		panic("ir: range increment must not be zero")
	}
	return Range{begin: begin, end: end, increment: increment}
}

// NewRange returns a resolved range with a constant end.
func NewRange(begin, end, increment int64) Range {
	return newRange(begin, constantEnd(end), increment)
}

// NewIndexRange returns an unresolved range whose end refers to another
// dimension of the nest.
func NewIndexRange(begin int64, end Index, increment int64) Range {
	return newRange(begin, indexEnd(end), increment)
}

// NewOperandRange returns an unresolved range whose end refers to a position
// in a dynamically-shaped operand.
func NewOperandRange(begin int64, end OperandIndex, increment int64) Range {
	return newRange(begin, operandEnd(end), increment)
}

// RangeFromValue returns a range whose end is given by a builder value. The
// defining operation of the value must be a dimension-size query or an
// integer constant; anything else panics.
func RangeFromValue(begin int64, end Value, increment int64) Range {
	switch op := end.DefiningOp().(type) {
	case *DimSizeOp:
		return NewIndexRange(begin, op.Dim, increment)
	case *ConstantOp:
		return NewRange(begin, op.Val, increment)
	default:
		panic(fmt.Sprintf("ir: unknown value type %s for a range end", end))
	}
}

// Begin returns the begin offset of the range.
func (r Range) Begin() int64 { return r.begin }

// End returns the constant end of the range.
// The range must be resolved.
func (r Range) End() int64 {
	switch end := r.end.(type) {
	case constantEnd:
		return int64(end)
	case indexEnd, operandEnd:
		panic("ir: range must be resolved before requesting End()")
	default:
		panic(fmt.Sprintf("ir: unsupported range end %T", end))
	}
}

// EndIndex returns the dimension index the end of the range refers to.
// The end of the range must be a dimension reference.
func (r Range) EndIndex() Index {
	switch end := r.end.(type) {
	case indexEnd:
		return Index(end)
	case constantEnd:
		panic("ir: calling EndIndex() on a constant range")
	case operandEnd:
		panic("ir: calling EndIndex() on an operand index range")
	default:
		panic(fmt.Sprintf("ir: unsupported range end %T", end))
	}
}

// EndOperandIndex returns the operand position the end of the range refers
// to. The end of the range must be an operand reference.
func (r Range) EndOperandIndex() OperandIndex {
	switch end := r.end.(type) {
	case operandEnd:
		return OperandIndex(end)
	case constantEnd:
		panic("ir: calling EndOperandIndex() on a constant range")
	case indexEnd:
		panic("ir: calling EndOperandIndex() on an index range")
	default:
		panic(fmt.Sprintf("ir: unsupported range end %T", end))
	}
}

// HasConstantEnd returns true if the end of the range is a constant.
func (r Range) HasConstantEnd() bool {
	_, ok := r.end.(constantEnd)
	return ok
}

// HasIndexEnd returns true if the end of the range refers to another
// dimension of the nest.
func (r Range) HasIndexEnd() bool {
	_, ok := r.end.(indexEnd)
	return ok
}

// HasOperandIndexEnd returns true if the end of the range refers to an
// operand position.
func (r Range) HasOperandIndexEnd() bool {
	_, ok := r.end.(operandEnd)
	return ok
}

// Increment returns the step of the range.
func (r Range) Increment() int64 { return r.increment }

// Size returns the number of positions the range spans.
// The range must be resolved.
func (r Range) Size() int64 { return r.End() - r.Begin() }

// NumIterations returns the number of iterations a forward loop over the
// range executes. The range must be resolved.
func (r Range) NumIterations() int64 {
	return ceilDiv(r.End()-r.Begin(), r.Increment())
}

// LastIterationBegin returns the begin offset of the final iteration. If the
// size of the range is not divisible by the increment, the final iteration is
// a partial boundary tile starting at End()-Size()%Increment(). Otherwise the
// final iteration is a full tile starting one increment before the end.
// The range must be resolved.
func (r Range) LastIterationBegin() int64 {
	result := r.End() - r.Size()%r.Increment()
	if result == r.End() {
		// Evenly divisible: no boundary tile.
		result = r.End() - r.Increment()
	}
	return result
}

// Equal returns true if both ranges have the same representation. Two
// resolved ranges are equal if begin, end and increment all match. Two
// unresolved ranges of the same kind are equal if their ends refer to the
// same handle, whatever their begins and increments. A resolved and an
// unresolved range are never equal: whether their values coincide cannot be
// determined before resolution.
func (r Range) Equal(other Range) bool {
	switch {
	case r.HasConstantEnd() && other.HasConstantEnd():
		return r.Begin() == other.Begin() && r.End() == other.End() && r.Increment() == other.Increment()
	case r.HasIndexEnd() && other.HasIndexEnd():
		return r.EndIndex().Equal(other.EndIndex())
	case r.HasOperandIndexEnd() && other.HasOperandIndexEnd():
		return r.EndOperandIndex().Equal(other.EndOperandIndex())
	default:
		return false
	}
}

// Less returns a strict total order over ranges, resolved or not. Ranges are
// ordered by begin first. Ties are broken by the ends when both ends are of
// the same kind. When the end kinds differ, the increments are compared
// instead: a deterministic tie-break with no numeric meaning, kept so that
// mixed collections of ranges sort stably.
func (r Range) Less(other Range) bool {
	switch {
	case r.Begin() != other.Begin():
		return r.Begin() < other.Begin()
	case r.HasConstantEnd() && other.HasConstantEnd():
		return r.End() < other.End()
	case r.HasIndexEnd() && other.HasIndexEnd():
		return r.EndIndex().Less(other.EndIndex())
	case r.HasOperandIndexEnd() && other.HasOperandIndexEnd():
		return r.EndOperandIndex().Less(other.EndOperandIndex())
	default:
		return r.Increment() < other.Increment()
	}
}

// LessEqual returns true if r is less than or equal to other.
func (r Range) LessEqual(other Range) bool {
	return r.Less(other) || r.Equal(other)
}

// String representation of the range, of the form [begin,end:increment).
func (r Range) String() string {
	return fmt.Sprintf("[%d,%s:%d)", r.begin, r.end, r.increment)
}

// Intersects returns true if the positions covered by two resolved ranges
// overlap. Each range covers the span from its begin to its last emitted
// position begin+(n-1)*increment. A range with zero iterations intersects
// nothing. The test is on spans only: two overlapping ranges with different
// increments may never emit a common position.
func Intersects(a, b Range) bool {
	aIter := a.NumIterations()
	bIter := b.NumIterations()
	if aIter == 0 || bIter == 0 {
		return false
	}
	aLast := a.Begin() + (aIter-1)*a.Increment()
	bLast := b.Begin() + (bIter-1)*b.Increment()
	return aLast >= b.Begin() && a.Begin() <= bLast
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
