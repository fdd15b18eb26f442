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

// Operands is the typed operand payload of a single instruction.  Exactly one
// variant exists per opcode family, and each variant carries only the fields
// meaningful for that opcode.
type Operands interface {
	fmt.Stringer
	// isOperands is a marker restricting implementations to this package,
	// thus keeping the set of opcode variants closed.
	isOperands()
}

// JmpCondition determines when a jmp instruction branches.
type JmpCondition uint8

// The complete set of jump conditions.
const (
	// JmpAlways branches unconditionally.
	JmpAlways JmpCondition = iota
	// JmpXIsZero branches when scratch X is zero ("!x").
	JmpXIsZero
	// JmpXDecNonZero branches when scratch X is non-zero, post-decrementing
	// it ("x--").
	JmpXDecNonZero
	// JmpYIsZero branches when scratch Y is zero ("!y").
	JmpYIsZero
	// JmpYDecNonZero branches when scratch Y is non-zero, post-decrementing
	// it ("y--").
	JmpYDecNonZero
	// JmpXNotEqualY branches when the scratch registers differ ("x!=y").
	JmpXNotEqualY
	// JmpPinHigh branches when the branch pin reads high ("pin").
	JmpPinHigh
	// JmpOsrNotEmpty branches when the output shift register is not empty
	// ("!osre").
	JmpOsrNotEmpty
)

func (c JmpCondition) String() string {
	switch c {
	case JmpAlways:
		return ""
	case JmpXIsZero:
		return "!x"
	case JmpXDecNonZero:
		return "x--"
	case JmpYIsZero:
		return "!y"
	case JmpYDecNonZero:
		return "y--"
	case JmpXNotEqualY:
		return "x!=y"
	case JmpPinHigh:
		return "pin"
	case JmpOsrNotEmpty:
		return "!osre"
	}
	//
	return "?"
}

// WaitSource identifies what a wait instruction blocks on.
type WaitSource uint8

// The complete set of wait sources.
const (
	// WaitGpio waits on an absolute GPIO index.
	WaitGpio WaitSource = iota
	// WaitPin waits on a pin selected via the input mapping.
	WaitPin
	// WaitIrq waits on an IRQ flag.
	WaitIrq
)

func (s WaitSource) String() string {
	switch s {
	case WaitGpio:
		return "gpio"
	case WaitPin:
		return "pin"
	case WaitIrq:
		return "irq"
	}
	//
	return "?"
}

// InSource identifies where an in instruction shifts bits from.
type InSource uint8

// The complete set of in sources.
const (
	InPins InSource = iota
	InX
	InY
	InNull
	InIsr
	InOsr
)

func (s InSource) String() string {
	switch s {
	case InPins:
		return "pins"
	case InX:
		return "x"
	case InY:
		return "y"
	case InNull:
		return "null"
	case InIsr:
		return "isr"
	case InOsr:
		return "osr"
	}
	//
	return "?"
}

// OutTarget identifies where an out instruction shifts bits to.
type OutTarget uint8

// The complete set of out targets.
const (
	OutPins OutTarget = iota
	OutX
	OutY
	OutNull
	OutPinDirs
	OutPc
	OutIsr
	OutExec
)

func (t OutTarget) String() string {
	switch t {
	case OutPins:
		return "pins"
	case OutX:
		return "x"
	case OutY:
		return "y"
	case OutNull:
		return "null"
	case OutPinDirs:
		return "pindirs"
	case OutPc:
		return "pc"
	case OutIsr:
		return "isr"
	case OutExec:
		return "exec"
	}
	//
	return "?"
}

// MovRegister identifies a source or destination of a mov instruction.  The
// same set is valid on both sides.
type MovRegister uint8

// The complete set of mov registers.
const (
	MovPins MovRegister = iota
	MovX
	MovY
	MovExec
	MovPc
	MovIsr
	MovOsr
)

func (r MovRegister) String() string {
	switch r {
	case MovPins:
		return "pins"
	case MovX:
		return "x"
	case MovY:
		return "y"
	case MovExec:
		return "exec"
	case MovPc:
		return "pc"
	case MovIsr:
		return "isr"
	case MovOsr:
		return "osr"
	}
	//
	return "?"
}

// MovOperation is the transformation a mov applies to its source.
type MovOperation uint8

// The complete set of mov operations.
const (
	// MovNone copies the source unchanged.
	MovNone MovOperation = iota
	// MovInvert copies the bitwise complement of the source ("!" or "~").
	MovInvert
	// MovBitReverse copies the source with its bit order reversed ("::").
	MovBitReverse
)

func (o MovOperation) String() string {
	switch o {
	case MovNone:
		return ""
	case MovInvert:
		return "!"
	case MovBitReverse:
		return "::"
	}
	//
	return "?"
}

// SetTarget identifies what a set instruction writes to.
type SetTarget uint8

// The complete set of set targets.
const (
	SetPins SetTarget = iota
	SetX
	SetY
	SetPinDirs
)

func (t SetTarget) String() string {
	switch t {
	case SetPins:
		return "pins"
	case SetX:
		return "x"
	case SetY:
		return "y"
	case SetPinDirs:
		return "pindirs"
	}
	//
	return "?"
}

// Mov copies (a transformation of) one register to another.  Note that "nop"
// is sugar for a mov of Y onto itself with no operation.
type Mov struct {
	Destination MovRegister
	Operation   MovOperation
	Source      MovRegister
}

// Jmp transfers control to a target address when its condition holds.
type Jmp struct {
	Condition JmpCondition
	Target    Value
}

// Wait stalls until a pin or IRQ flag reaches the given polarity.
type Wait struct {
	Polarity Value
	Source   WaitSource
	Index    Value
	// Relative marks the index as relative to the executing state machine
	// (irq source only).
	Relative bool
}

// In shifts a number of bits from a source into the input shift register.
type In struct {
	Source   InSource
	BitCount Value
}

// Out shifts a number of bits from the output shift register to a target.
type Out struct {
	Target   OutTarget
	BitCount Value
}

// Push transfers the input shift register to the RX FIFO.
type Push struct {
	// IfFull only pushes once the shift threshold has been reached.
	IfFull bool
	// Block stalls on a full FIFO rather than dropping.
	Block bool
}

// Pull transfers a word from the TX FIFO into the output shift register.
type Pull struct {
	// IfEmpty only pulls once the shift threshold has been reached.
	IfEmpty bool
	// Block stalls on an empty FIFO rather than loading from X.
	Block bool
}

// Irq raises, waits on, or clears an IRQ flag.  The (Clear, Wait) pair
// distinguishes the set/nowait, wait, and clear forms.
type Irq struct {
	Clear bool
	Wait  bool
	Index Value
	// Relative marks the index as relative to the executing state machine.
	Relative bool
}

// Set writes an immediate value to a target.
type Set struct {
	Target SetTarget
	Data   Value
}

func (p *Mov) isOperands()  {}
func (p *Jmp) isOperands()  {}
func (p *Wait) isOperands() {}
func (p *In) isOperands()   {}
func (p *Out) isOperands()  {}
func (p *Push) isOperands() {}
func (p *Pull) isOperands() {}
func (p *Irq) isOperands()  {}
func (p *Set) isOperands()  {}

func (p *Mov) String() string {
	return fmt.Sprintf("mov %s, %s%s", p.Destination, p.Operation, p.Source)
}

func (p *Jmp) String() string {
	if p.Condition == JmpAlways {
		return fmt.Sprintf("jmp %s", p.Target)
	}
	//
	return fmt.Sprintf("jmp %s, %s", p.Condition, p.Target)
}

func (p *Wait) String() string {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "wait %s %s, %s", p.Polarity, p.Source, p.Index)
	//
	if p.Relative {
		builder.WriteString(" rel")
	}
	//
	return builder.String()
}

func (p *In) String() string {
	return fmt.Sprintf("in %s, %s", p.Source, p.BitCount)
}

func (p *Out) String() string {
	return fmt.Sprintf("out %s, %s", p.Target, p.BitCount)
}

func (p *Push) String() string {
	var builder strings.Builder
	//
	builder.WriteString("push")
	//
	if p.IfFull {
		builder.WriteString(" iffull")
	}
	//
	if p.Block {
		builder.WriteString(" block")
	} else {
		builder.WriteString(" noblock")
	}
	//
	return builder.String()
}

func (p *Pull) String() string {
	var builder strings.Builder
	//
	builder.WriteString("pull")
	//
	if p.IfEmpty {
		builder.WriteString(" ifempty")
	}
	//
	if p.Block {
		builder.WriteString(" block")
	} else {
		builder.WriteString(" noblock")
	}
	//
	return builder.String()
}

func (p *Irq) String() string {
	var builder strings.Builder
	//
	builder.WriteString("irq")
	//
	switch {
	case p.Clear:
		builder.WriteString(" clear")
	case p.Wait:
		builder.WriteString(" wait")
	default:
		builder.WriteString(" set")
	}
	//
	fmt.Fprintf(&builder, " %s", p.Index)
	//
	if p.Relative {
		builder.WriteString(" rel")
	}
	//
	return builder.String()
}

func (p *Set) String() string {
	return fmt.Sprintf("set %s, %s", p.Target, p.Data)
}
