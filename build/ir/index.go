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

// Package ir defines the intermediate representation of loop-nest iteration
// spaces: dimension indexes, operand positions, and the ranges built over
// them. Values of this package are immutable once constructed and are copied
// by value through the transformation passes consuming them.
package ir

import "fmt"

// Index identifies one dimension of a loop nest. Indexes are allocated by
// the builder layer; equality and order are defined by the allocated id only,
// the name is kept for diagnostics.
type Index struct {
	name string
	id   int
}

// NewIndex returns an index with the given name and unique id.
func NewIndex(name string, id int) Index {
	return Index{name: name, id: id}
}

// Name of the dimension.
func (idx Index) Name() string { return idx.name }

// ID returns the unique id of the dimension.
func (idx Index) ID() int { return idx.id }

// Equal returns true if both indexes identify the same dimension.
func (idx Index) Equal(other Index) bool { return idx.id == other.id }

// Less orders indexes by their id.
func (idx Index) Less(other Index) bool { return idx.id < other.id }

// String representation of the index.
func (idx Index) String() string {
	return fmt.Sprintf("%s(%d)", idx.name, idx.id)
}

// OperandIndex identifies a position in a dynamically-shaped operand from
// which a bound is extracted once the operand's shape is known.
type OperandIndex struct {
	pos int
}

// NewOperandIndex returns an operand index for the given operand position.
func NewOperandIndex(pos int) OperandIndex {
	return OperandIndex{pos: pos}
}

// Position of the operand.
func (oi OperandIndex) Position() int { return oi.pos }

// Equal returns true if both refer to the same operand position.
func (oi OperandIndex) Equal(other OperandIndex) bool { return oi.pos == other.pos }

// Less orders operand indexes by position.
func (oi OperandIndex) Less(other OperandIndex) bool { return oi.pos < other.pos }

// String representation of the operand index.
func (oi OperandIndex) String() string {
	return fmt.Sprintf("operand(%d)", oi.pos)
}
