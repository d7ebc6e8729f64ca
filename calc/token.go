/*
 * ============= Ryft-Customized BSD License ============
 * Copyright (c) 2015, Ryft Systems, Inc.
 * All rights reserved.
 * Redistribution and use in source and binary forms, with or without modification,
 * are permitted provided that the following conditions are met:
 *
 * 1. Redistributions of source code must retain the above copyright notice,
 *   this list of conditions and the following disclaimer.
 * 2. Redistributions in binary form must reproduce the above copyright notice,
 *   this list of conditions and the following disclaimer in the documentation and/or
 *   other materials provided with the distribution.
 * 3. All advertising materials mentioning features or use of this software must display the following acknowledgement:
 *   This product includes software developed by Ryft Systems, Inc.
 * 4. Neither the name of Ryft Systems, Inc. nor the names of its contributors may be used
 *   to endorse or promote products derived from this software without specific prior written permission.
 *
 * THIS SOFTWARE IS PROVIDED BY RYFT SYSTEMS, INC. ''AS IS'' AND ANY
 * EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
 * WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
 * DISCLAIMED. IN NO EVENT SHALL RYFT SYSTEMS, INC. BE LIABLE FOR ANY
 * DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES
 * (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;
 * LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND
 * ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
 * (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
 * SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
 * ============
 */

package calc

// Token is a kind of lexical unit.
type Token int

const (
	EOF Token = iota // end of input, never stored in a token sequence

	NUMBER // 123, 1.5, .5

	PLUS  // +
	MINUS // -
	MUL   // *
	DIV   // /
	MOD   // %
	POW   // ^

	LPAREN // (
	RPAREN // )

	SQRT // sqrt
	ABS  // abs
	FAC  // fac
)

var tokenNames = [...]string{
	EOF:    "EOF",
	NUMBER: "NUMBER",
	PLUS:   "+",
	MINUS:  "-",
	MUL:    "*",
	DIV:    "/",
	MOD:    "%",
	POW:    "^",
	LPAREN: "(",
	RPAREN: ")",
	SQRT:   "sqrt",
	ABS:    "abs",
	FAC:    "fac",
}

// String gets the token name.
func (t Token) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "UNKNOWN"
}

// IsFunction checks the token is a named unary function.
func (t Token) IsFunction() bool {
	switch t {
	case SQRT, ABS, FAC:
		return true
	}
	return false
}

// named functions
var functions = map[string]Token{
	"sqrt": SQRT,
	"abs":  ABS,
	"fac":  FAC,
}

// single rune operators and parentheses
var operators = map[rune]Token{
	'+': PLUS,
	'-': MINUS,
	'*': MUL,
	'/': DIV,
	'%': MOD,
	'^': POW,
	'(': LPAREN,
	')': RPAREN,
}
