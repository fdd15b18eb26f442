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
package parser

import (
	"strconv"
	"strings"

	"github.com/rp2tools/go-pioasm/pkg/pio/ast"
	"github.com/rp2tools/go-pioasm/pkg/util/source"
	"github.com/rp2tools/go-pioasm/pkg/util/source/lex"
)

// ParseFile accepts a given source file representing a complete PIO assembly
// file (top-level definitions followed by named program blocks), and parses
// it into an abstract syntax tree along with a mapping from parsed lines back
// to their source spans.
func ParseFile(srcfile *source.File) (ast.File, *source.Map[any], []source.SyntaxError) {
	parser := NewParser(srcfile)
	//
	file, errors := parser.ParseFile()
	//
	return file, parser.SourceMap(), errors
}

// ParseProgram accepts a given source file representing a bare program body
// (e.g. a fragment used for macro expansion), and parses it into an abstract
// syntax tree along with a mapping from parsed lines back to their source
// spans.
func ParseProgram(srcfile *source.File) (ast.Program, *source.Map[any], []source.SyntaxError) {
	parser := NewParser(srcfile)
	//
	program, errors := parser.ParseProgram()
	//
	return program, parser.SourceMap(), errors
}

// ============================================================================
// Parser
// ============================================================================

// Parser is a parser for PIO assembly language.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Source mapping
	srcmap *source.Map[any]
	// Position within the tokens
	index int
}

// NewParser constructs a new parser for a given source file.
func NewParser(srcfile *source.File) *Parser {
	// Construct (initially empty) source mapping
	srcmap := source.NewSourceMap[any](*srcfile)
	//
	return &Parser{srcfile, nil, srcmap, 0}
}

// SourceMap returns the mapping from parsed line records to their spans in
// the original source file.
func (p *Parser) SourceMap() *source.Map[any] {
	return p.srcmap
}

// ParseFile parses the source file as a complete assembly file: any number of
// leading definitions, followed by any number of named program blocks.
func (p *Parser) ParseFile() (ast.File, []source.SyntaxError) {
	var (
		file   ast.File
		errors []source.SyntaxError
	)
	// Convert source file into tokens
	if p.tokens, errors = Lex(*p.srcfile); len(errors) > 0 {
		return file, errors
	}
	// Absorb leading blank lines
	p.skipNewlines()
	// Parse top-level definitions
	for p.lookahead().Kind == KEYWORD_DEFINE {
		start := p.index
		//
		define, errs := p.parseDefine()
		if len(errs) > 0 {
			return file, errs
		}
		//
		p.srcmap.Put(define, p.spanOf(start, p.index-1))
		//
		if errs = p.parseLineEnd(); len(errs) > 0 {
			return file, errs
		}
		//
		file.Defines = append(file.Defines, define)
	}
	// Parse program blocks
	for p.lookahead().Kind == KEYWORD_PROGRAM {
		p.match(KEYWORD_PROGRAM)
		//
		name, errs := p.parseIdentifier()
		if len(errs) > 0 {
			return file, errs
		}
		//
		if errs = p.parseLineEnd(); len(errs) > 0 {
			return file, errs
		}
		//
		program, errs := p.parseProgramBody(true)
		if len(errs) > 0 {
			return file, errs
		}
		//
		file.Programs = append(file.Programs, ast.NamedProgram{Name: name, Program: program})
	}
	// Anything left over is an error
	if p.lookahead().Kind != END_OF {
		return file, p.expected(p.lookahead(), KEYWORD_DEFINE, KEYWORD_PROGRAM, END_OF)
	}
	//
	return file, nil
}

// ParseProgram parses the source file as a bare program body, running to the
// end of the input.
func (p *Parser) ParseProgram() (ast.Program, []source.SyntaxError) {
	var (
		program ast.Program
		errors  []source.SyntaxError
	)
	// Convert source file into tokens
	if p.tokens, errors = Lex(*p.srcfile); len(errors) > 0 {
		return program, errors
	}
	//
	return p.parseProgramBody(false)
}

// Parse a sequence of lines, either until the end of the input or (within a
// file) until the next program block begins.
func (p *Parser) parseProgramBody(inFile bool) (ast.Program, []source.SyntaxError) {
	var program ast.Program
	// Absorb leading blank lines
	p.skipNewlines()
	//
	for {
		kind := p.lookahead().Kind
		//
		if kind == END_OF || (inFile && kind == KEYWORD_PROGRAM) {
			break
		}
		//
		start := p.index
		//
		line, errs := p.parseLine()
		if len(errs) > 0 {
			return program, errs
		}
		//
		p.srcmap.Put(line, p.spanOf(start, p.index-1))
		//
		if errs = p.parseLineEnd(); len(errs) > 0 {
			return program, errs
		}
		//
		program.Lines = append(program.Lines, line)
	}
	//
	return program, nil
}

// Parse a single line: a directive, a label declaration, or an instruction.
func (p *Parser) parseLine() (ast.Line, []source.SyntaxError) {
	lookahead := p.lookahead()
	//
	switch lookahead.Kind {
	case KEYWORD_DEFINE:
		define, errs := p.parseDefine()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return define, nil
	case KEYWORD_ORIGIN:
		p.match(KEYWORD_ORIGIN)
		//
		value, errs := p.parseValue()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return &ast.Origin{Value: value}, nil
	case KEYWORD_SIDE_SET:
		p.match(KEYWORD_SIDE_SET)
		//
		value, errs := p.parseValue()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		opt := p.matchKeyword("opt")
		pindirs := p.matchKeyword("pindirs")
		//
		return &ast.SideSet{Value: value, Opt: opt, PinDirs: pindirs}, nil
	case KEYWORD_WRAP_TARGET:
		p.match(KEYWORD_WRAP_TARGET)
		return &ast.WrapTarget{}, nil
	case KEYWORD_WRAP:
		p.match(KEYWORD_WRAP)
		return &ast.Wrap{}, nil
	case LANG_OPT:
		p.match(LANG_OPT)
		// Content is passed through verbatim, not interpreted here.
		return &ast.LangOpt{Raw: p.string(lookahead)}, nil
	case IDENTIFIER:
		return p.parseLabelOrInstruction()
	default:
		return nil, p.expected(lookahead,
			KEYWORD_DEFINE, KEYWORD_ORIGIN, KEYWORD_SIDE_SET,
			KEYWORD_WRAP_TARGET, KEYWORD_WRAP, LANG_OPT, IDENTIFIER)
	}
}

// Parse a ".define [public] <symbol> <expression>" directive.
func (p *Parser) parseDefine() (*ast.Define, []source.SyntaxError) {
	if _, errs := p.expect(KEYWORD_DEFINE); len(errs) > 0 {
		return nil, errs
	}
	//
	public := p.matchKeyword("public")
	//
	name, errs := p.parseIdentifier()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	value, errs := p.parseExpression()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return &ast.Define{Public: public, Name: name, Value: value}, nil
}

// Distinguish a label declaration from an instruction.  A label is an
// identifier followed by a colon, optionally preceded by "public".
func (p *Parser) parseLabelOrInstruction() (ast.Line, []source.SyntaxError) {
	// Cannot fail, caller checked the lookahead.
	tok, _ := p.expect(IDENTIFIER)
	name := p.string(tok)
	//
	if p.match(COLON) {
		return &ast.Label{Name: name}, nil
	}
	//
	if name == "public" && p.follows(IDENTIFIER, COLON) {
		inner, _ := p.expect(IDENTIFIER)
		p.match(COLON)
		//
		return &ast.Label{Public: true, Name: p.string(inner)}, nil
	}
	//
	return p.parseInstruction(tok)
}

// Parse an instruction: an opcode-specific operand production, followed by
// optional side-set and delay clauses in either order.
func (p *Parser) parseInstruction(opcode lex.Token) (ast.Line, []source.SyntaxError) {
	var (
		operands ast.Operands
		errs     []source.SyntaxError
	)
	//
	switch p.string(opcode) {
	case "nop":
		// Sugar for a mov of Y onto itself.
		operands = &ast.Mov{Destination: ast.MovY, Operation: ast.MovNone, Source: ast.MovY}
	case "jmp":
		operands, errs = p.parseJmp()
	case "wait":
		operands, errs = p.parseWait()
	case "in":
		operands, errs = p.parseIn()
	case "out":
		operands, errs = p.parseOut()
	case "push":
		operands, errs = p.parsePush()
	case "pull":
		operands, errs = p.parsePull()
	case "mov":
		operands, errs = p.parseMov()
	case "irq":
		operands, errs = p.parseIrq()
	case "set":
		operands, errs = p.parseSet()
	default:
		return nil, p.syntaxErrors(opcode, "unknown opcode")
	}
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	sideSet, delay, errs := p.parseSideSetDelay()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return &ast.Instruction{Operands: operands, SideSet: sideSet, Delay: delay}, nil
}

// Parse the operands of a jmp: an optional condition clause, an optional
// comma, then the target expression.
func (p *Parser) parseJmp() (ast.Operands, []source.SyntaxError) {
	condition := ast.JmpAlways
	lookahead := p.lookahead()
	//
	if p.match(BANG) {
		// "!x", "!y" or "!osre"
		tok, errs := p.expect(IDENTIFIER)
		if len(errs) > 0 {
			return nil, errs
		}
		//
		switch p.string(tok) {
		case "x":
			condition = ast.JmpXIsZero
		case "y":
			condition = ast.JmpYIsZero
		case "osre":
			condition = ast.JmpOsrNotEmpty
		default:
			return nil, p.syntaxErrors(tok, "unknown jump condition")
		}
	} else if lookahead.Kind == IDENTIFIER && p.follows(IDENTIFIER, MINUS_MINUS) {
		// "x--" or "y--"
		tok, _ := p.expect(IDENTIFIER)
		p.match(MINUS_MINUS)
		//
		switch p.string(tok) {
		case "x":
			condition = ast.JmpXDecNonZero
		case "y":
			condition = ast.JmpYDecNonZero
		default:
			return nil, p.syntaxErrors(tok, "unknown jump condition")
		}
	} else if lookahead.Kind == IDENTIFIER && p.follows(IDENTIFIER, NOT_EQUALS) {
		// "x!=y"
		lhs, _ := p.expect(IDENTIFIER)
		p.match(NOT_EQUALS)
		//
		rhs, errs := p.expect(IDENTIFIER)
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if p.string(lhs) != "x" || p.string(rhs) != "y" {
			return nil, p.syntaxErrors(lhs, "unknown jump condition")
		}
		//
		condition = ast.JmpXNotEqualY
	} else if p.matchKeyword("pin") {
		condition = ast.JmpPinHigh
	}
	// A comma is only permitted after a condition clause.
	if condition != ast.JmpAlways {
		p.match(COMMA)
	}
	//
	target, errs := p.parseExpression()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return &ast.Jmp{Condition: condition, Target: target}, nil
}

// Parse the operands of a wait: a polarity value, a source, an index value,
// and (for IRQ waits) an optional trailing "rel".
func (p *Parser) parseWait() (ast.Operands, []source.SyntaxError) {
	polarity, errs := p.parseValue()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	tok, errs := p.expect(IDENTIFIER)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	var src ast.WaitSource
	//
	switch p.string(tok) {
	case "gpio":
		src = ast.WaitGpio
	case "pin":
		src = ast.WaitPin
	case "irq":
		src = ast.WaitIrq
	default:
		return nil, p.syntaxErrors(tok, "unknown wait source")
	}
	//
	p.match(COMMA)
	//
	index, errs := p.parseValue()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	relative := false
	if src == ast.WaitIrq {
		relative = p.matchKeyword("rel")
	}
	//
	return &ast.Wait{Polarity: polarity, Source: src, Index: index, Relative: relative}, nil
}

// Parse the operands of an in: a source, an optional comma, and a bit count.
func (p *Parser) parseIn() (ast.Operands, []source.SyntaxError) {
	tok, errs := p.expect(IDENTIFIER)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	var src ast.InSource
	//
	switch p.string(tok) {
	case "pins":
		src = ast.InPins
	case "x":
		src = ast.InX
	case "y":
		src = ast.InY
	case "null":
		src = ast.InNull
	case "isr":
		src = ast.InIsr
	case "osr":
		src = ast.InOsr
	default:
		return nil, p.syntaxErrors(tok, "unknown in source")
	}
	//
	p.match(COMMA)
	//
	bitCount, errs := p.parseValue()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return &ast.In{Source: src, BitCount: bitCount}, nil
}

// Parse the operands of an out: a target, an optional comma, and a bit count.
func (p *Parser) parseOut() (ast.Operands, []source.SyntaxError) {
	tok, errs := p.expect(IDENTIFIER)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	var target ast.OutTarget
	//
	switch p.string(tok) {
	case "pins":
		target = ast.OutPins
	case "x":
		target = ast.OutX
	case "y":
		target = ast.OutY
	case "null":
		target = ast.OutNull
	case "pindirs":
		target = ast.OutPinDirs
	case "pc":
		target = ast.OutPc
	case "isr":
		target = ast.OutIsr
	case "exec":
		target = ast.OutExec
	default:
		return nil, p.syntaxErrors(tok, "unknown out target")
	}
	//
	p.match(COMMA)
	//
	bitCount, errs := p.parseValue()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return &ast.Out{Target: target, BitCount: bitCount}, nil
}

// Parse the operands of a push: an optional "iffull" flag and an optional
// blocking mode (defaulting to block).
func (p *Parser) parsePush() (ast.Operands, []source.SyntaxError) {
	ifFull := p.matchKeyword("iffull")
	//
	block := true
	if p.matchKeyword("noblock") {
		block = false
	} else {
		p.matchKeyword("block")
	}
	//
	return &ast.Push{IfFull: ifFull, Block: block}, nil
}

// Parse the operands of a pull: an optional "ifempty" flag and an optional
// blocking mode (defaulting to block).
func (p *Parser) parsePull() (ast.Operands, []source.SyntaxError) {
	ifEmpty := p.matchKeyword("ifempty")
	//
	block := true
	if p.matchKeyword("noblock") {
		block = false
	} else {
		p.matchKeyword("block")
	}
	//
	return &ast.Pull{IfEmpty: ifEmpty, Block: block}, nil
}

// Parse the operands of a mov: a destination register, an optional comma, an
// optional operation ("!"/"~" for invert, "::" for bit-reverse), and a source
// register.
func (p *Parser) parseMov() (ast.Operands, []source.SyntaxError) {
	destination, errs := p.parseMovRegister()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	p.match(COMMA)
	//
	operation := ast.MovNone
	//
	if p.match(BANG) || p.match(TILDE) {
		operation = ast.MovInvert
	} else if p.match(COLON_COLON) {
		operation = ast.MovBitReverse
	}
	//
	src, errs := p.parseMovRegister()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return &ast.Mov{Destination: destination, Operation: operation, Source: src}, nil
}

// Parse a single mov register name.
func (p *Parser) parseMovRegister() (ast.MovRegister, []source.SyntaxError) {
	tok, errs := p.expect(IDENTIFIER)
	if len(errs) > 0 {
		return 0, errs
	}
	//
	switch p.string(tok) {
	case "pins":
		return ast.MovPins, nil
	case "x":
		return ast.MovX, nil
	case "y":
		return ast.MovY, nil
	case "exec":
		return ast.MovExec, nil
	case "pc":
		return ast.MovPc, nil
	case "isr":
		return ast.MovIsr, nil
	case "osr":
		return ast.MovOsr, nil
	default:
		return 0, p.syntaxErrors(tok, "unknown mov register")
	}
}

// Parse the operands of an irq: an optional modifier keyword, an index value,
// and an optional trailing "rel".  The modifier determines the (clear, wait)
// flag pair.
func (p *Parser) parseIrq() (ast.Operands, []source.SyntaxError) {
	var clear, wait bool
	//
	if lookahead := p.lookahead(); lookahead.Kind == IDENTIFIER {
		switch p.string(lookahead) {
		case "set", "nowait":
			p.match(IDENTIFIER)
		case "wait":
			p.match(IDENTIFIER)
			//
			wait = true
		case "clear":
			p.match(IDENTIFIER)
			//
			clear = true
		}
	}
	//
	index, errs := p.parseValue()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	relative := p.matchKeyword("rel")
	//
	return &ast.Irq{Clear: clear, Wait: wait, Index: index, Relative: relative}, nil
}

// Parse the operands of a set: a target, an optional comma, and a data value.
func (p *Parser) parseSet() (ast.Operands, []source.SyntaxError) {
	tok, errs := p.expect(IDENTIFIER)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	var target ast.SetTarget
	//
	switch p.string(tok) {
	case "pins":
		target = ast.SetPins
	case "x":
		target = ast.SetX
	case "y":
		target = ast.SetY
	case "pindirs":
		target = ast.SetPinDirs
	default:
		return nil, p.syntaxErrors(tok, "unknown set target")
	}
	//
	p.match(COMMA)
	//
	data, errs := p.parseValue()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return &ast.Set{Target: target, Data: data}, nil
}

// Parse the optional side-set and delay clauses trailing an instruction.
// Either may be omitted and they may appear in either order, but each at most
// once.  An absent delay becomes the literal zero; an absent side-set stays
// nil, which is distinct from an explicit side-set of zero.
func (p *Parser) parseSideSetDelay() (ast.Value, ast.Value, []source.SyntaxError) {
	var sideSet, delay ast.Value
	//
	for {
		lookahead := p.lookahead()
		//
		if lookahead.Kind == IDENTIFIER && p.string(lookahead) == "side" {
			if sideSet != nil {
				return nil, nil, p.syntaxErrors(lookahead, "side-set already given")
			}
			//
			p.match(IDENTIFIER)
			//
			value, errs := p.parseValue()
			if len(errs) > 0 {
				return nil, nil, errs
			}
			//
			sideSet = value
		} else if lookahead.Kind == LBRACKET {
			if delay != nil {
				return nil, nil, p.syntaxErrors(lookahead, "delay already given")
			}
			//
			p.match(LBRACKET)
			//
			value, errs := p.parseExpression()
			if len(errs) > 0 {
				return nil, nil, errs
			}
			//
			if _, errs = p.expect(RBRACKET); len(errs) > 0 {
				return nil, nil, errs
			}
			//
			delay = value
		} else {
			break
		}
	}
	// Default fill for an absent delay
	if delay == nil {
		delay = &ast.Int{Value: 0}
	}
	//
	return sideSet, delay, nil
}

// ============================================================================
// Expressions
// ============================================================================

// Parse the lowest tier of the expression grammar: left-associative addition
// and subtraction.
func (p *Parser) parseExpression() (ast.Value, []source.SyntaxError) {
	lhs, errs := p.parseTerm()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	for {
		if p.match(PLUS) {
			rhs, errs := p.parseTerm()
			if len(errs) > 0 {
				return nil, errs
			}
			//
			lhs = &ast.Add{Left: lhs, Right: rhs}
		} else if p.match(MINUS) {
			rhs, errs := p.parseTerm()
			if len(errs) > 0 {
				return nil, errs
			}
			//
			lhs = &ast.Sub{Left: lhs, Right: rhs}
		} else {
			return lhs, nil
		}
	}
}

// Parse the middle tier of the expression grammar: left-associative
// multiplication and division, binding tighter than addition.
func (p *Parser) parseTerm() (ast.Value, []source.SyntaxError) {
	lhs, errs := p.parseFactor()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	for {
		if p.match(STAR) {
			rhs, errs := p.parseFactor()
			if len(errs) > 0 {
				return nil, errs
			}
			//
			lhs = &ast.Mul{Left: lhs, Right: rhs}
		} else if p.match(SLASH) {
			rhs, errs := p.parseFactor()
			if len(errs) > 0 {
				return nil, errs
			}
			//
			lhs = &ast.Div{Left: lhs, Right: rhs}
		} else {
			return lhs, nil
		}
	}
}

// Parse the highest tier of the expression grammar: prefix negation and
// bit-reversal, binding tighter than any binary operator.
func (p *Parser) parseFactor() (ast.Value, []source.SyntaxError) {
	if p.match(MINUS) {
		operand, errs := p.parseFactor()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return &ast.Neg{Operand: operand}, nil
	} else if p.match(COLON_COLON) {
		operand, errs := p.parseFactor()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return &ast.Rev{Operand: operand}, nil
	}
	//
	return p.parseValue()
}

// Parse an atomic value: an integer literal, a symbol reference, or a
// parenthesised sub-expression.
func (p *Parser) parseValue() (ast.Value, []source.SyntaxError) {
	lookahead := p.lookahead()
	//
	switch lookahead.Kind {
	case NUMBER:
		p.match(NUMBER)
		return p.number(lookahead)
	case IDENTIFIER:
		p.match(IDENTIFIER)
		return &ast.Symbol{Name: p.string(lookahead)}, nil
	case LPAREN:
		p.match(LPAREN)
		//
		expr, errs := p.parseExpression()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		if _, errs = p.expect(RPAREN); len(errs) > 0 {
			return nil, errs
		}
		//
		return expr, nil
	default:
		return nil, p.expected(lookahead, NUMBER, IDENTIFIER, LPAREN)
	}
}

// Convert an integer literal into a 32-bit signed value.  A literal outside
// the 32-bit range is reported at the literal itself.
func (p *Parser) number(token lex.Token) (ast.Value, []source.SyntaxError) {
	var (
		text = p.string(token)
		base = 10
	)
	//
	if strings.HasPrefix(text, "0b") {
		text, base = text[2:], 2
	} else if strings.HasPrefix(text, "0x") {
		text, base = text[2:], 16
	}
	//
	value, err := strconv.ParseInt(text, base, 32)
	if err != nil {
		return nil, p.syntaxErrors(token, "integer literal out of range")
	}
	//
	return &ast.Int{Value: int32(value)}, nil
}

// ============================================================================
// Helpers
// ============================================================================

// Parse an identifier, returning its text.
func (p *Parser) parseIdentifier() (string, []source.SyntaxError) {
	tok, errs := p.expect(IDENTIFIER)
	//
	if len(errs) > 0 {
		return "", errs
	}
	//
	return p.string(tok), nil
}

// Match a given keyword, which lexes as an identifier with specific text.
func (p *Parser) matchKeyword(keyword string) bool {
	lookahead := p.lookahead()
	//
	if lookahead.Kind == IDENTIFIER && p.string(lookahead) == keyword {
		p.index++
		return true
	}
	//
	return false
}

// Consume the end of a line: one or more newlines (blank lines between
// statements are legal and absorbed), or the end of the input.
func (p *Parser) parseLineEnd() []source.SyntaxError {
	if p.lookahead().Kind == END_OF {
		return nil
	}
	//
	if _, errs := p.expect(NEWLINE); len(errs) > 0 {
		return errs
	}
	//
	p.skipNewlines()
	//
	return nil
}

// Absorb any number of consecutive newlines.
func (p *Parser) skipNewlines() {
	for p.match(NEWLINE) {
	}
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint) (lex.Token, []source.SyntaxError) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		return lookahead, p.expected(lookahead, kind)
	}
	//
	p.index++
	//
	return lookahead, nil
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Follows checks what follows the current position.
func (p *Parser) follows(kinds ...uint) bool {
	for i, kind := range kinds {
		n := i + p.index
		if n >= len(p.tokens) {
			return false
		} else if p.tokens[n].Kind != kind {
			return false
		}
	}
	//
	return true
}

// Determine the span covered by a given range of tokens (inclusive).
func (p *Parser) spanOf(firstToken, lastToken int) source.Span {
	start := p.tokens[firstToken].Span.Start()
	end := p.tokens[lastToken].Span.End()
	//
	return source.NewSpan(start, end)
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}

// Construct a syntax error recording the set of token kinds which would have
// been accepted at the given position.
func (p *Parser) expected(token lex.Token, kinds ...uint) []source.SyntaxError {
	names := make([]string, len(kinds))
	//
	for i, kind := range kinds {
		names[i] = tokenNames[kind]
	}
	//
	return []source.SyntaxError{*p.srcfile.SyntaxErrorExpecting(token.Span, "unexpected token", names...)}
}
