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
	"testing"

	"github.com/rp2tools/go-pioasm/pkg/util/assert"
	"github.com/rp2tools/go-pioasm/pkg/util/source"
)

func TestLexNumberRule(t *testing.T) {
	assert.Equal(t, 4, number([]rune("0b10a")))
	assert.Equal(t, 3, number([]rune("0x1p")))
	assert.Equal(t, 2, number([]rune("12a")))
	assert.Equal(t, 4, number([]rune("0xaF=")))
	// "0x" without digits falls back to a decimal zero
	assert.Equal(t, 1, number([]rune("0x")))
}

func TestLexIdentifierRule(t *testing.T) {
	assert.Equal(t, 5, identifier([]rune("loop1 x")))
	assert.Equal(t, 4, identifier([]rune("_tmp:")))
	assert.Equal(t, 0, identifier([]rune("1tmp")))
	// Combining marks and connector punctuation may continue an identifier
	assert.Equal(t, 3, identifier([]rune("e\u0301x=")))
	assert.Equal(t, 3, identifier([]rune("a\u203f1.")))
}

func TestLexCodeBlockRule(t *testing.T) {
	assert.Equal(t, 15, codeBlock([]rune("% c-sdk {\nint%}")))
	assert.Equal(t, 14, codeBlock([]rune("% c-sdk {\nint%")))
	// Marker must reach '{' before the end of the line
	assert.Equal(t, 0, codeBlock([]rune("% c-sdk\n{%}")))
	// Unterminated block
	assert.Equal(t, 0, codeBlock([]rune("% c-sdk {\nint")))
}

func TestLexLangOptRule(t *testing.T) {
	assert.Equal(t, 26, langOpt([]rune(".lang_opt python foo = bar")))
	assert.Equal(t, 15, langOpt([]rune(".lang_opt c x=1\nset pins, 1")))
}

func TestLex_01(t *testing.T) {
	checkLex(t, "set pins, 1",
		IDENTIFIER, IDENTIFIER, COMMA, NUMBER, END_OF)
}

func TestLex_02(t *testing.T) {
	checkLex(t, "jmp !x loop",
		IDENTIFIER, BANG, IDENTIFIER, IDENTIFIER, END_OF)
}

func TestLex_03(t *testing.T) {
	checkLex(t, "jmp x-- loop",
		IDENTIFIER, IDENTIFIER, MINUS_MINUS, IDENTIFIER, END_OF)
}

func TestLex_04(t *testing.T) {
	checkLex(t, "jmp x!=y loop",
		IDENTIFIER, IDENTIFIER, NOT_EQUALS, IDENTIFIER, IDENTIFIER, END_OF)
}

func TestLex_05(t *testing.T) {
	checkLex(t, "mov x, ::y",
		IDENTIFIER, IDENTIFIER, COMMA, COLON_COLON, IDENTIFIER, END_OF)
}

func TestLex_06(t *testing.T) {
	checkLex(t, ".program blink\n.wrap_target\n.wrap",
		KEYWORD_PROGRAM, IDENTIFIER, NEWLINE,
		KEYWORD_WRAP_TARGET, NEWLINE, KEYWORD_WRAP, END_OF)
}

func TestLex_07(t *testing.T) {
	checkLex(t, ".define public delay (1 + 2) * 3",
		KEYWORD_DEFINE, IDENTIFIER, IDENTIFIER,
		LPAREN, NUMBER, PLUS, NUMBER, RPAREN, STAR, NUMBER, END_OF)
}

// A trailing comment does not interrupt statement termination.
func TestLex_08(t *testing.T) {
	checkLex(t, "nop ; does nothing\nnop",
		IDENTIFIER, NEWLINE, IDENTIFIER, END_OF)
}

// A comment on its own line consumes its leading newline, so the preceding
// statement is terminated exactly once.
func TestLex_09(t *testing.T) {
	checkLex(t, "nop\n; a comment\nnop",
		IDENTIFIER, NEWLINE, IDENTIFIER, END_OF)
}

func TestLex_10(t *testing.T) {
	checkLex(t, "nop\r\nnop",
		IDENTIFIER, NEWLINE, IDENTIFIER, END_OF)
}

// Passthrough blocks are discarded whole, including embedded braces.
func TestLex_11(t *testing.T) {
	checkLex(t, "nop\n% c-sdk {\nstatic int x;\n%}\nnop",
		IDENTIFIER, NEWLINE, NEWLINE, IDENTIFIER, END_OF)
}

// Language options are captured as a single opaque token.
func TestLex_12(t *testing.T) {
	checkLex(t, ".lang_opt python sideset_init = 1\nnop",
		LANG_OPT, NEWLINE, IDENTIFIER, END_OF)
}

func TestLex_13(t *testing.T) {
	checkLex(t, "set pins, 0b101 side 0x1 [2]",
		IDENTIFIER, IDENTIFIER, COMMA, NUMBER,
		IDENTIFIER, NUMBER, LBRACKET, NUMBER, RBRACKET, END_OF)
}

// Unicode identifiers are accepted.
func TestLex_14(t *testing.T) {
	checkLex(t, "jmp délai",
		IDENTIFIER, IDENTIFIER, END_OF)
}

func TestLexInvalidText(t *testing.T) {
	srcfile := source.NewSourceFile("test.pio", []byte("nop ?"))
	//
	_, errs := Lex(*srcfile)
	//
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, "unrecognised text encountered", errs[0].Message())
	//
	span := errs[0].Span()
	assert.Equal(t, 4, span.Start())
}

func checkLex(t *testing.T, input string, expected ...uint) {
	t.Helper()
	//
	srcfile := source.NewSourceFile("test.pio", []byte(input))
	//
	tokens, errs := Lex(*srcfile)
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Error())
	}
	//
	kinds := make([]uint, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	//
	assert.Equal(t, expected, kinds)
}
