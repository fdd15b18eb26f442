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
	"strings"
)

// Line is a single statement within a program: a directive, a label
// declaration, or an instruction.  Line order within a program is
// semantically significant, as it determines instruction and label order.
type Line interface {
	fmt.Stringer
	// isLine is a marker restricting implementations to this package.
	isLine()
}

// Directive is a dot-prefixed declaration.  Directives are also lines.
type Directive interface {
	Line
	// isDirective is a marker restricting implementations to this package.
	isDirective()
}

// Instruction is a single executable statement: a typed operand variant, an
// optional side-set expression, and a cycle-delay expression.
type Instruction struct {
	Operands Operands
	// SideSet is nil when no side-set clause was written.  This is distinct
	// from an explicit side-set of zero.
	SideSet Value
	// Delay is the literal zero when no delay clause was written.
	Delay Value
}

// Label declares a named position within a program.  Public labels are
// visible outside the defining program block.
type Label struct {
	Public bool
	Name   string
}

// Define binds a name to an expression.  Public definitions are visible
// outside the defining program block.
type Define struct {
	Public bool
	Name   string
	Value  Value
}

// Origin fixes the load address of the enclosing program.
type Origin struct {
	Value Value
}

// SideSet declares the width of the side-set channel, whether per-instruction
// side-set clauses are optional, and whether they steer pin directions rather
// than values.
type SideSet struct {
	Value   Value
	Opt     bool
	PinDirs bool
}

// WrapTarget marks the point execution wraps back to.  The blank field keeps
// the struct non-empty, so distinct declarations get distinct addresses and
// hence their own identity in the source map.
type WrapTarget struct{ _ byte }

// Wrap marks the point execution wraps from.  Non-empty for the same reason
// as WrapTarget.
type Wrap struct{ _ byte }

// LangOpt is an opaque language-option line, passed through verbatim for
// downstream emitters.
type LangOpt struct {
	Raw string
}

func (p *Instruction) isLine() {}
func (p *Label) isLine()       {}
func (p *Define) isLine()      {}
func (p *Origin) isLine()      {}
func (p *SideSet) isLine()     {}
func (p *WrapTarget) isLine()  {}
func (p *Wrap) isLine()        {}
func (p *LangOpt) isLine()     {}

func (p *Define) isDirective()     {}
func (p *Origin) isDirective()     {}
func (p *SideSet) isDirective()    {}
func (p *WrapTarget) isDirective() {}
func (p *Wrap) isDirective()       {}
func (p *LangOpt) isDirective()    {}

func (p *Instruction) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Operands.String())
	//
	if p.SideSet != nil {
		fmt.Fprintf(&builder, " side %s", p.SideSet)
	}
	// Suppress the implicit zero delay
	if n, ok := p.Delay.(*Int); !ok || n.Value != 0 {
		fmt.Fprintf(&builder, " [%s]", p.Delay)
	}
	//
	return builder.String()
}

func (p *Label) String() string {
	if p.Public {
		return fmt.Sprintf("public %s:", p.Name)
	}
	//
	return fmt.Sprintf("%s:", p.Name)
}

func (p *Define) String() string {
	if p.Public {
		return fmt.Sprintf(".define public %s %s", p.Name, p.Value)
	}
	//
	return fmt.Sprintf(".define %s %s", p.Name, p.Value)
}

func (p *Origin) String() string {
	return fmt.Sprintf(".origin %s", p.Value)
}

func (p *SideSet) String() string {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, ".side_set %s", p.Value)
	//
	if p.Opt {
		builder.WriteString(" opt")
	}
	//
	if p.PinDirs {
		builder.WriteString(" pindirs")
	}
	//
	return builder.String()
}

func (p *WrapTarget) String() string {
	return ".wrap_target"
}

func (p *Wrap) String() string {
	return ".wrap"
}

func (p *LangOpt) String() string {
	return p.Raw
}

// Program is an ordered sequence of lines.
type Program struct {
	Lines []Line
}

func (p *Program) String() string {
	var builder strings.Builder
	//
	for _, line := range p.Lines {
		builder.WriteString(line.String())
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

// NamedProgram pairs a program block with its declared name.
type NamedProgram struct {
	Name    string
	Program Program
}

// File is a complete source file: top-level definitions followed by named
// program blocks, both in source order.
type File struct {
	Defines  []*Define
	Programs []NamedProgram
}

func (p *File) String() string {
	var builder strings.Builder
	//
	for _, def := range p.Defines {
		builder.WriteString(def.String())
		builder.WriteString("\n")
	}
	//
	for _, prog := range p.Programs {
		fmt.Fprintf(&builder, ".program %s\n", prog.Name)
		builder.WriteString(prog.Program.String())
	}
	//
	return builder.String()
}
