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

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is an evaluation mode.
type Mode int

const (
	INTEGER Mode = iota // int64 arithmetic
	FLOAT               // float64 arithmetic
)

// String gets the mode name.
func (m Mode) String() string {
	switch m {
	case INTEGER:
		return "int"
	case FLOAT:
		return "float"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses the mode name. Empty string means INTEGER.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "int", "integer":
		return INTEGER, nil
	case "float", "double", "real":
		return FLOAT, nil
	}
	return INTEGER, fmt.Errorf("%q is unknown evaluation mode", s)
}

// Options contains evaluation options.
type Options struct {
	Mode Mode

	// Strict rejects lexemes left after the expression,
	// by default "2 + 2 9" is evaluated to 4.
	Strict bool
}

// DefaultOptions gets the default options: integer mode, lenient.
func DefaultOptions() Options {
	return Options{Mode: INTEGER}
}

// String gets the string representation.
func (o Options) String() string {
	if o.Strict {
		return fmt.Sprintf("{%s, strict}", o.Mode)
	}
	return fmt.Sprintf("{%s}", o.Mode)
}

// Result is an evaluation result.
// Only the field matching the Mode is valid.
type Result struct {
	Mode  Mode
	Int   int64
	Float float64
}

// Value gets the result as float64.
func (r Result) Value() float64 {
	if r.Mode == INTEGER {
		return float64(r.Int)
	}
	return r.Float
}

// Interface gets the result as int64 or float64 depending on the mode.
func (r Result) Interface() interface{} {
	if r.Mode == INTEGER {
		return r.Int
	}
	return r.Float
}

// String gets the shortest string representation.
func (r Result) String() string {
	if r.Mode == INTEGER {
		return strconv.FormatInt(r.Int, 10)
	}
	return strconv.FormatFloat(r.Float, 'f', -1, 64)
}

// Evaluate evaluates the expression text.
// All errors are *Error and abort the whole evaluation.
func Evaluate(text string, opts Options) (Result, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return Result{Mode: opts.Mode}, err
	}

	switch opts.Mode {
	case INTEGER:
		v, err := run[int64](tokens, intArith{}, opts.Strict)
		return Result{Mode: INTEGER, Int: v}, err
	case FLOAT:
		v, err := run[float64](tokens, floatArith{}, opts.Strict)
		return Result{Mode: FLOAT, Float: v}, err
	}

	return Result{Mode: opts.Mode}, fmt.Errorf("%s is unknown evaluation mode", opts.Mode)
}

// EvalInt evaluates the expression in integer mode.
func EvalInt(text string) (int64, error) {
	res, err := Evaluate(text, Options{Mode: INTEGER})
	return res.Int, err
}

// EvalFloat evaluates the expression in floating-point mode.
func EvalFloat(text string) (float64, error) {
	res, err := Evaluate(text, Options{Mode: FLOAT})
	return res.Float, err
}

// run evaluates the tokens using the arithmetic.
func run[T Number](tokens []Lexeme, arith arithmetic[T], strict bool) (T, error) {
	p := newEvaluator(tokens, arith)
	res, err := p.evaluate()
	if err != nil {
		var zero T
		return zero, err
	}

	if strict && !p.EOF() {
		var zero T
		return zero, newError(ErrTrailingTokens, "unexpected %s", p.peek())
	}

	return res, nil
}
