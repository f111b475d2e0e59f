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

// Package builder constructs loop-nest IR values.
//
// The builder owns the allocation of dimension indexes: each index receives
// a unique id so that indexes can be compared and ordered by passes that
// never look at their names. The builder also produces the values used as
// dynamic range ends (dimension-size queries and integer constants) and
// offers explicit entry points to construct ranges from them so that most
// call sites never go through defining-op inspection.
package builder

import (
	"github.com/loopnest-org/loopnest/build/ir"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Builder allocates dimension indexes and produces loop-nest IR values.
type Builder struct {
	nextID  int
	indexes map[string]ir.Index
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{indexes: make(map[string]ir.Index)}
}

// NewIndex allocates an index for a new loop dimension.
// Dimension names are unique within a builder.
func (b *Builder) NewIndex(name string) (ir.Index, error) {
	if name == "" {
		return ir.Index{}, errors.Errorf("cannot create a dimension with an empty name")
	}
	if prev, ok := b.indexes[name]; ok {
		return ir.Index{}, errors.Errorf("dimension %s already defined", prev)
	}
	idx := ir.NewIndex(name, b.nextID)
	b.nextID++
	b.indexes[name] = idx
	return idx, nil
}

// Index returns a previously allocated index given its name.
func (b *Builder) Index(name string) (ir.Index, bool) {
	idx, ok := b.indexes[name]
	return idx, ok
}

// Indexes returns all the indexes allocated by the builder, in allocation
// order.
func (b *Builder) Indexes() []ir.Index {
	indexes := maps.Values(b.indexes)
	slices.SortFunc(indexes, func(x, y ir.Index) int {
		return x.ID() - y.ID()
	})
	return indexes
}

// OperandPosition returns an operand index for the given operand position.
func (b *Builder) OperandPosition(pos int) (ir.OperandIndex, error) {
	if pos < 0 {
		return ir.OperandIndex{}, errors.Errorf("invalid operand position %d", pos)
	}
	return ir.NewOperandIndex(pos), nil
}

// DimSize returns a value querying the size of a dimension.
func (b *Builder) DimSize(idx ir.Index) ir.Value {
	return ir.ValueOf(&ir.DimSizeOp{Dim: idx})
}

// Constant returns an integer constant value.
func (b *Builder) Constant(val int64) ir.Value {
	return ir.ValueOf(&ir.ConstantOp{Val: val})
}

// Add returns the sum of two values.
func (b *Builder) Add(x, y ir.Value) ir.Value {
	return ir.ValueOf(&ir.AddOp{X: x, Y: y})
}

// RangeFromConstant returns a resolved range over [begin, end).
func (b *Builder) RangeFromConstant(begin, end, increment int64) ir.Range {
	return ir.NewRange(begin, end, increment)
}

// RangeFromDimSize returns an unresolved range whose end is the size of
// another dimension.
func (b *Builder) RangeFromDimSize(begin int64, idx ir.Index, increment int64) ir.Range {
	return ir.NewIndexRange(begin, idx, increment)
}
