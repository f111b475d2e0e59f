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

// Package nest builds iteration domains: the set of dimensions, with their
// ranges, that a loop nest iterates over. A domain keeps its dimensions in
// declaration order until it is canonicalized, at which point the range
// order decides. Scheduling passes consume domains to count iteration
// points and to test two nests for overlapping iteration spaces.
package nest

import (
	"strings"

	"github.com/loopnest-org/loopnest/base/ordered"
	"github.com/loopnest-org/loopnest/build/ir"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Dimension pairs a loop dimension with its iteration range.
type Dimension struct {
	Index ir.Index
	Range ir.Range
}

// String representation of the dimension.
func (d Dimension) String() string {
	return d.Index.String() + ":" + d.Range.String()
}

// Domain is the iteration space of a loop nest.
type Domain struct {
	dims *ordered.Map[ir.Index, ir.Range]
}

// NewDomain returns an empty domain.
func NewDomain() *Domain {
	return &Domain{dims: ordered.NewMap[ir.Index, ir.Range]()}
}

// Add declares a dimension iterating over a range.
func (d *Domain) Add(idx ir.Index, rng ir.Range) error {
	if d.dims.Contains(idx) {
		return errors.Errorf("dimension %s already declared in the domain", idx)
	}
	d.dims.Store(idx, rng)
	return nil
}

// Range returns the range of a dimension.
func (d *Domain) Range(idx ir.Index) (ir.Range, bool) {
	return d.dims.Load(idx)
}

// Size returns the number of dimensions in the domain.
func (d *Domain) Size() int {
	return d.dims.Size()
}

// Dimensions returns the dimensions of the domain in their current order.
func (d *Domain) Dimensions() []Dimension {
	dims := make([]Dimension, 0, d.dims.Size())
	for idx, rng := range d.dims.Iter() {
		dims = append(dims, Dimension{Index: idx, Range: rng})
	}
	return dims
}

// Validate checks that the domain can be handed to numeric queries.
// All problems found are returned as one combined error.
func (d *Domain) Validate() error {
	var err error
	for idx, rng := range d.dims.Iter() {
		if rng.Increment() < 0 {
			err = multierr.Append(err, errors.Errorf("dimension %s: negative increment %d", idx, rng.Increment()))
		}
		if !rng.HasConstantEnd() {
			err = multierr.Append(err, errors.Errorf("dimension %s: end of range %s not resolved", idx, rng))
			continue
		}
		if rng.End() < rng.Begin() {
			err = multierr.Append(err, errors.Errorf("dimension %s: range %s ends before it begins", idx, rng))
		}
	}
	return err
}

// NumPoints returns the total number of iteration points of the domain, that
// is the product of the number of iterations of every dimension. All ranges
// must be resolved. An empty domain has one point.
func (d *Domain) NumPoints() int64 {
	points := int64(1)
	for rng := range d.dims.Values() {
		points *= rng.NumIterations()
	}
	return points
}

// Canonicalize reorders the dimensions of the domain into the canonical
// order: ranges first, declaration ids breaking ties. The order is total
// also when some ranges are unresolved, so canonicalizing a domain is
// deterministic at any stage of compilation.
func (d *Domain) Canonicalize() {
	d.dims.SortKeys(func(ki ir.Index, vi ir.Range, kj ir.Index, vj ir.Range) int {
		switch {
		case vi.Less(vj):
			return -1
		case vj.Less(vi):
			return 1
		case ki.Less(kj):
			return -1
		case kj.Less(ki):
			return 1
		default:
			return 0
		}
	})
}

// Overlaps returns true if the iteration points of the two domains overlap
// on every dimension they share. Domains sharing no dimension do not
// overlap. The ranges of all shared dimensions must be resolved.
func (d *Domain) Overlaps(other *Domain) bool {
	shared := false
	for idx, rng := range d.dims.Iter() {
		otherRng, ok := other.dims.Load(idx)
		if !ok {
			continue
		}
		shared = true
		if !ir.Intersects(rng, otherRng) {
			return false
		}
	}
	return shared
}

// String representation of the domain.
func (d *Domain) String() string {
	var s strings.Builder
	s.WriteString("{")
	for i, dim := range d.Dimensions() {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(dim.String())
	}
	s.WriteString("}")
	return s.String()
}
