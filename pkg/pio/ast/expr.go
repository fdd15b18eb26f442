// Copyright the go-pioasm authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ast

import (
	"fmt"
	"strconv"
)

// Value is a node within an arithmetic expression attached to a directive or
// instruction operand.  Expressions form finite trees where every composite
// node exclusively owns its children; they are built bottom-up during parsing
// and never mutated afterwards.  Symbols are opaque leaves at this level:
// resolving them against a symbol table (and, hence, evaluating expressions)
// is the responsibility of downstream code generation.
type Value interface {
	fmt.Stringer
	// isValue is a marker restricting implementations to this package, thus
	// keeping the set of expression forms closed.
	isValue()
}

// Int is a 32-bit signed integer literal.
type Int struct {
	Value int32
}

// Symbol is a reference to a named constant or label, left unresolved by the
// parser.
type Symbol struct {
	Name string
}

// Add is the sum of two sub-expressions.
type Add struct {
	Left  Value
	Right Value
}

// Sub is the difference of two sub-expressions.
type Sub struct {
	Left  Value
	Right Value
}

// Mul is the product of two sub-expressions.
type Mul struct {
	Left  Value
	Right Value
}

// Div is the quotient of two sub-expressions.  Rounding semantics are decided
// by the evaluator, not here.
type Div struct {
	Left  Value
	Right Value
}

// Neg is the arithmetic negation of a sub-expression.
type Neg struct {
	Operand Value
}

// Rev is the bit-reversal of a sub-expression.  How many bits participate is
// decided by the evaluator, not here.
type Rev struct {
	Operand Value
}

func (p *Int) isValue()    {}
func (p *Symbol) isValue() {}
func (p *Add) isValue()    {}
func (p *Sub) isValue()    {}
func (p *Mul) isValue()    {}
func (p *Div) isValue()    {}
func (p *Neg) isValue()    {}
func (p *Rev) isValue()    {}

func (p *Int) String() string {
	return strconv.FormatInt(int64(p.Value), 10)
}

func (p *Symbol) String() string {
	return p.Name
}

func (p *Add) String() string {
	return fmt.Sprintf("(%s + %s)", p.Left, p.Right)
}

func (p *Sub) String() string {
	return fmt.Sprintf("(%s - %s)", p.Left, p.Right)
}

func (p *Mul) String() string {
	return fmt.Sprintf("(%s * %s)", p.Left, p.Right)
}

func (p *Div) String() string {
	return fmt.Sprintf("(%s / %s)", p.Left, p.Right)
}

func (p *Neg) String() string {
	return fmt.Sprintf("-%s", p.Operand)
}

func (p *Rev) String() string {
	return fmt.Sprintf("::%s", p.Operand)
}
