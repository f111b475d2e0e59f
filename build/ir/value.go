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

import "fmt"

type (
	// Op is an operation producing a value in the loop-nest IR.
	Op interface {
		op()

		// String representation of the operation.
		String() string
	}

	// DimSizeOp queries the size of a loop dimension that has not been
	// resolved to a constant yet.
	DimSizeOp struct {
		Dim Index
	}

	// ConstantOp is an integer literal.
	ConstantOp struct {
		Val int64
	}

	// AddOp is the sum of two values. Ranges cannot be built from it
	// directly: sums over dimension sizes are folded by a later pass.
	AddOp struct {
		X, Y Value
	}
)

func (*DimSizeOp) op()  {}
func (*ConstantOp) op() {}
func (*AddOp) op()      {}

// String representation of the operation.
func (op *DimSizeOp) String() string {
	return fmt.Sprintf("dim_size(%s)", op.Dim)
}

// String representation of the operation.
func (op *ConstantOp) String() string {
	return fmt.Sprintf("constant(%d)", op.Val)
}

// String representation of the operation.
func (op *AddOp) String() string {
	return fmt.Sprintf("add(%s, %s)", op.X, op.Y)
}

// Value is the result of a builder operation. A value does not carry a
// payload of its own: it is inspected through its defining operation.
type Value struct {
	op Op
}

// ValueOf returns the value produced by an operation.
func ValueOf(op Op) Value {
	return Value{op: op}
}

// DefiningOp returns the operation producing the value.
func (v Value) DefiningOp() Op { return v.op }

// String representation of the value.
func (v Value) String() string {
	if v.op == nil {
		return "<nil>"
	}
	return v.op.String()
}
