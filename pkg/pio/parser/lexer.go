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
	"unicode"

	"github.com/rp2tools/go-pioasm/pkg/util/collection/array"
	"github.com/rp2tools/go-pioasm/pkg/util/source"
	"github.com/rp2tools/go-pioasm/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// NEWLINE signals "\n" (or "\r\n"), which terminates a statement
const NEWLINE uint = 1

// WHITESPACE signals horizontal whitespace
const WHITESPACE uint = 2

// COMMENT signals "; ... \n"
const COMMENT uint = 3

// CODE_BLOCK signals an embedded passthrough block "% ... { ... %}"
const CODE_BLOCK uint = 4

// COMMA signals ","
const COMMA uint = 5

// COLON signals ":"
const COLON uint = 6

// LBRACKET signals "["
const LBRACKET uint = 7

// RBRACKET signals "]"
const RBRACKET uint = 8

// LPAREN signals "("
const LPAREN uint = 9

// RPAREN signals ")"
const RPAREN uint = 10

// PLUS signals "+"
const PLUS uint = 11

// MINUS signals "-"
const MINUS uint = 12

// STAR signals "*"
const STAR uint = 13

// SLASH signals "/"
const SLASH uint = 14

// COLON_COLON signals "::"
const COLON_COLON uint = 15

// NOT_EQUALS signals "!="
const NOT_EQUALS uint = 16

// MINUS_MINUS signals "--"
const MINUS_MINUS uint = 17

// BANG signals "!"
const BANG uint = 18

// TILDE signals "~"
const TILDE uint = 19

// NUMBER signals an integer literal (decimal, binary or hexadecimal)
const NUMBER uint = 20

// IDENTIFIER signals a symbol, opcode or keyword
const IDENTIFIER uint = 21

// LANG_OPT signals an opaque ".lang_opt ..." line
const LANG_OPT uint = 22

// KEYWORD_PROGRAM signals ".program"
const KEYWORD_PROGRAM uint = 30

// KEYWORD_DEFINE signals ".define"
const KEYWORD_DEFINE uint = 31

// KEYWORD_ORIGIN signals ".origin"
const KEYWORD_ORIGIN uint = 32

// KEYWORD_SIDE_SET signals ".side_set"
const KEYWORD_SIDE_SET uint = 33

// KEYWORD_WRAP_TARGET signals ".wrap_target"
const KEYWORD_WRAP_TARGET uint = 34

// KEYWORD_WRAP signals ".wrap"
const KEYWORD_WRAP uint = 35

// tokenNames gives each token kind a human-readable name, for use in the
// expected-token sets attached to syntax errors.
var tokenNames = map[uint]string{
	END_OF:              "end of file",
	NEWLINE:             "newline",
	COMMA:               "','",
	COLON:               "':'",
	LBRACKET:            "'['",
	RBRACKET:            "']'",
	LPAREN:              "'('",
	RPAREN:              "')'",
	PLUS:                "'+'",
	MINUS:               "'-'",
	STAR:                "'*'",
	SLASH:               "'/'",
	COLON_COLON:         "'::'",
	NOT_EQUALS:          "'!='",
	MINUS_MINUS:         "'--'",
	BANG:                "'!'",
	TILDE:               "'~'",
	NUMBER:              "number",
	IDENTIFIER:          "identifier",
	LANG_OPT:            ".lang_opt",
	KEYWORD_PROGRAM:     ".program",
	KEYWORD_DEFINE:      ".define",
	KEYWORD_ORIGIN:      ".origin",
	KEYWORD_SIDE_SET:    ".side_set",
	KEYWORD_WRAP_TARGET: ".wrap_target",
	KEYWORD_WRAP:        ".wrap",
}

// Rule for describing (horizontal) whitespace.  Newlines are significant and
// lexed separately.
var whitespace lex.Scanner = lex.Many(lex.Or(
	lex.Unit(' '),
	lex.Unit('\t'),
	lex.Unit('\v'),
	lex.Unit('\f')))

// Rule for describing a statement-terminating newline.
var newline lex.Scanner = lex.Or(lex.String("\r\n"), lex.Unit('\n'))

// Comments start with ';' and continue until the end of the line.  An
// immediately-preceding newline is consumed as part of the comment, so that a
// comment on its own line does not terminate the preceding statement twice.
var (
	commentTail lex.Scanner = lex.SequenceNullableLast(
		lex.Unit(';'),
		lex.Many(lex.NoneOf('\n', '\r')))

	comment lex.Scanner = lex.Or(lex.Sequence(newline, commentTail), commentTail)
)

// Rule for describing numbers.  A number is either a hexadecimal, binary, or
// decimal one.
var (
	binaryDigit  = lex.Within('0', '1')
	binaryStart  = lex.Sequence(lex.String("0b"), binaryDigit)
	decimalDigit = lex.Within('0', '9')

	hexDigit = lex.Or(
		lex.Within('0', '9'),
		lex.Within('A', 'F'),
		lex.Within('a', 'f'),
	)
	hexStart = lex.Sequence(lex.String("0x"), hexDigit)

	number = lex.Or(
		lex.SequenceNullableLast(binaryStart, lex.Many(binaryDigit)),
		lex.SequenceNullableLast(hexStart, lex.Many(hexDigit)),
		lex.SequenceNullableLast(decimalDigit, lex.Many(decimalDigit)),
	)
)

// Rule for describing identifiers: an identifier-start character (letter,
// letter-number or underscore) followed by identifier-continue characters,
// which add decimal digits, combining marks and connector punctuation.
var (
	identifierStart lex.Scanner = lex.Match(func(r rune) bool {
		return r == '_' || unicode.In(r, unicode.L, unicode.Nl)
	})

	identifierRest lex.Scanner = lex.Many(lex.Match(func(r rune) bool {
		return unicode.In(r, unicode.L, unicode.Nl, unicode.Nd, unicode.Mn, unicode.Mc, unicode.Pc)
	}))

	identifier lex.Scanner = lex.And(identifierStart, identifierRest)
)

// Rule for describing opaque language-option lines, captured whole.
var langOpt lex.Scanner = lex.SequenceNullableLast(
	lex.String(".lang_opt"),
	lex.Many(lex.NoneOf('\n', '\r')))

// codeBlock scans an embedded passthrough block: a '%'-prefixed marker ending
// in '{' on the same line, with everything up to (and including) the next '%'
// belonging to the block.  A '}' immediately following the closing '%' is
// consumed with it.  The instruction grammar never sees the contents.
func codeBlock(items []rune) uint {
	if len(items) == 0 || items[0] != '%' {
		return 0
	}
	// Scan the marker, which must reach '{' before the end of the line.
	i := 1
	//
	for ; ; i++ {
		if i == len(items) || items[i] == '\n' || items[i] == '%' {
			return 0
		} else if items[i] == '{' {
			break
		}
	}
	// Scan the body, which extends to the next '%'.
	for i = i + 1; i < len(items); i++ {
		if items[i] == '%' {
			i++
			//
			if i < len(items) && items[i] == '}' {
				i++
			}
			//
			return uint(i)
		}
	}
	// Unterminated block
	return 0
}

// lexing rules, tried in order with the first match winning.  The
// context-sensitive shapes (comments, passthrough blocks, language options)
// come before generic tokenisation.
var rules []lex.LexRule = []lex.LexRule{
	lex.Rule(comment, COMMENT),
	lex.Rule(newline, NEWLINE),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(codeBlock, CODE_BLOCK),
	lex.Rule(langOpt, LANG_OPT),
	lex.Rule(lex.String(".wrap_target"), KEYWORD_WRAP_TARGET),
	lex.Rule(lex.String(".wrap"), KEYWORD_WRAP),
	lex.Rule(lex.String(".program"), KEYWORD_PROGRAM),
	lex.Rule(lex.String(".define"), KEYWORD_DEFINE),
	lex.Rule(lex.String(".origin"), KEYWORD_ORIGIN),
	lex.Rule(lex.String(".side_set"), KEYWORD_SIDE_SET),
	lex.Rule(lex.String("::"), COLON_COLON),
	lex.Rule(lex.String("!="), NOT_EQUALS),
	lex.Rule(lex.String("--"), MINUS_MINUS),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(lex.Unit('['), LBRACKET),
	lex.Rule(lex.Unit(']'), RBRACKET),
	lex.Rule(lex.Unit('('), LPAREN),
	lex.Rule(lex.Unit(')'), RPAREN),
	lex.Rule(lex.Unit('+'), PLUS),
	lex.Rule(lex.Unit('-'), MINUS),
	lex.Rule(lex.Unit('*'), STAR),
	lex.Rule(lex.Unit('/'), SLASH),
	lex.Rule(lex.Unit('!'), BANG),
	lex.Rule(lex.Unit('~'), TILDE),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof(), END_OF),
}

// Lex a given source file into a sequence of zero or more tokens, along with
// any lexical errors arising.  Whitespace, comments and passthrough blocks
// are discarded.
func Lex(srcfile source.File) ([]lex.Token, []source.SyntaxError) {
	var (
		lexer = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unrecognised text encountered")
		//
		return nil, []source.SyntaxError{*err}
	}
	// Remove anything the grammar does not interpret
	tokens = array.RemoveMatching(tokens, func(t lex.Token) bool {
		return t.Kind == WHITESPACE || t.Kind == COMMENT || t.Kind == CODE_BLOCK
	})
	// Done
	return tokens, nil
}
