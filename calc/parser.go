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

// evaluator parses the token sequence and computes the value at the same time.
// There is no syntax tree: every grammar rule returns a number.
type evaluator[T Number] struct {
	tokens []Lexeme
	pos    int // cursor
	depth  int // current nesting of factors
	arith  arithmetic[T]
}

// maximum nesting of parentheses, negations and function calls
const maxDepth = 10000

// newEvaluator creates evaluator for the token sequence.
func newEvaluator[T Number](tokens []Lexeme, arith arithmetic[T]) *evaluator[T] {
	return &evaluator[T]{
		tokens: tokens,
		arith:  arith,
	}
}

// peek gets the current lexeme without consuming it.
// EOF is returned past the end.
func (p *evaluator[T]) peek() Lexeme {
	if p.pos >= len(p.tokens) {
		return NewLexeme(EOF)
	}
	return p.tokens[p.pos]
}

// advance consumes the current lexeme.
func (p *evaluator[T]) advance() {
	p.pos++
}

// EOF checks if all lexemes are consumed.
func (p *evaluator[T]) EOF() bool {
	return p.pos >= len(p.tokens)
}

// evaluate parses the whole expression.
// trailing lexemes are left unconsumed, see EOF()
func (p *evaluator[T]) evaluate() (res T, err error) {
	defer recoverer(&err)

	res = p.parseExpr()
	return
}

// parse "+" and "-"
func (p *evaluator[T]) parseExpr() T {
	res := p.parseModulo() // first argument
	for {
		switch p.peek().token {
		case PLUS:
			p.advance()
			res = p.arith.add(res, p.parseModulo())
		case MINUS:
			p.advance()
			res = p.arith.sub(res, p.parseModulo())
		default:
			return res
		}
	}
}

// parse "%", binds weaker than "*" and "/"
func (p *evaluator[T]) parseModulo() T {
	res := p.parseTerm() // first argument
	for p.peek().token == MOD {
		p.advance()
		res = p.arith.mod(res, p.parseTerm())
	}
	return res
}

// parse "*" and "/"
func (p *evaluator[T]) parseTerm() T {
	res := p.parsePower() // first argument
	for {
		switch p.peek().token {
		case MUL:
			p.advance()
			res = p.arith.mul(res, p.parsePower())
		case DIV:
			p.advance()
			res = p.arith.div(res, p.parsePower())
		default:
			return res
		}
	}
}

// parse "^", left-associative: 2^3^2 is (2^3)^2
func (p *evaluator[T]) parsePower() T {
	res := p.parseFactor() // first argument
	for p.peek().token == POW {
		p.advance()
		res = p.arith.pow(res, p.parseFactor())
	}
	return res
}

// parse number, negation, parentheses and functions
func (p *evaluator[T]) parseFactor() T {
	lex := p.peek()
	if lex.token == NUMBER {
		p.advance()
		return p.arith.number(lex.literal)
	}

	p.enter(lex)
	defer p.leave()

	switch {
	case lex.token == MINUS:
		p.advance()
		return p.arith.neg(p.parseFactor())

	case lex.token == LPAREN:
		p.advance()
		res := p.parseExpr()
		if end := p.peek(); end.token != RPAREN {
			panic(newError(ErrUnclosedParen, "expected ), got %s", end))
		}
		p.advance()
		return res

	case lex.token.IsFunction():
		p.advance()
		arg := p.parseArgument()
		switch lex.token {
		case SQRT:
			return p.arith.sqrt(arg)
		case ABS:
			return p.arith.abs(arg)
		default:
			return p.arith.fac(arg)
		}
	}

	panic(newError(ErrUnexpectedToken, "did not expect %s", lex))
}

// enter one more nesting level, panics past maxDepth
func (p *evaluator[T]) enter(lex Lexeme) {
	if p.depth++; p.depth > maxDepth {
		panic(newError(ErrTooDeep, "more than %d levels at %s", maxDepth, lex))
	}
}

// leave the nesting level
func (p *evaluator[T]) leave() {
	p.depth--
}

// parse function argument: "(" is required
// but only checked, the argument itself is a factor
func (p *evaluator[T]) parseArgument() T {
	if lex := p.peek(); lex.token != LPAREN {
		panic(newError(ErrMissingParen, "expected (, got %s", lex))
	}
	return p.parseFactor()
}
