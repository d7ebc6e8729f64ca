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
	"errors"
	"math"
	"strconv"
)

// Number is a value type the evaluator can compute with.
type Number interface {
	int64 | float64
}

// arithmetic implements all operations of one evaluation mode.
// domain problems are reported via panic(*Error)
type arithmetic[T Number] interface {
	number(lit string) T

	add(a, b T) T
	sub(a, b T) T
	mul(a, b T) T
	div(a, b T) T
	mod(a, b T) T
	pow(a, b T) T

	neg(a T) T
	sqrt(a T) T
	abs(a T) T
	fac(a T) T
}

// integer arithmetic, overflow is an error
type intArith struct{}

func (intArith) number(lit string) int64 {
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			panic(newError(ErrOverflow, "%s", lit))
		}
		panic(newError(ErrBadNumber, "%q is not an integer", lit))
	}
	return v
}

func (intArith) add(a, b int64) int64 {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		panic(newError(ErrOverflow, "%d + %d", a, b))
	}
	return c
}

func (intArith) sub(a, b int64) int64 {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		panic(newError(ErrOverflow, "%d - %d", a, b))
	}
	return c
}

func (intArith) mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		panic(newError(ErrOverflow, "%d * %d", a, b))
	}
	return c
}

// truncates toward zero
func (intArith) div(a, b int64) int64 {
	if b == 0 {
		panic(newError(ErrDivisionByZero, "%d / %d", a, b))
	}
	if a == math.MinInt64 && b == -1 {
		panic(newError(ErrOverflow, "%d / %d", a, b))
	}
	return a / b
}

// sign follows the dividend
func (intArith) mod(a, b int64) int64 {
	if b == 0 {
		panic(newError(ErrDivisionByZero, "%d %% %d", a, b))
	}
	return a % b
}

func (m intArith) pow(a, b int64) int64 {
	if b < 0 {
		panic(newError(ErrNegativeExponent, "%d ^ %d", a, b))
	}

	res := int64(1)
	for ; b > 0; b >>= 1 {
		if b&1 != 0 {
			res = m.mul(res, a)
		}
		if b > 1 {
			a = m.mul(a, a)
		}
	}
	return res
}

func (intArith) neg(a int64) int64 {
	if a == math.MinInt64 {
		panic(newError(ErrOverflow, "-(%d)", a))
	}
	return -a
}

// truncated
func (intArith) sqrt(a int64) int64 {
	if a < 0 {
		panic(newError(ErrDomain, "sqrt(%d)", a))
	}
	return int64(math.Sqrt(float64(a)))
}

func (m intArith) abs(a int64) int64 {
	if a < 0 {
		return m.neg(a)
	}
	return a
}

// product of 2..n, 1 for n <= 1
func (m intArith) fac(n int64) int64 {
	res := int64(1)
	for i := int64(2); i <= n; i++ {
		res = m.mul(res, i)
	}
	return res
}

// IEEE double arithmetic
type floatArith struct{}

func (floatArith) number(lit string) float64 {
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) { // out of range is +Inf
		panic(newError(ErrBadNumber, "%q is not a number", lit))
	}
	return v
}

func (floatArith) add(a, b float64) float64 { return a + b }
func (floatArith) sub(a, b float64) float64 { return a - b }
func (floatArith) mul(a, b float64) float64 { return a * b }
func (floatArith) div(a, b float64) float64 { return a / b }
func (floatArith) mod(a, b float64) float64 { return math.Mod(a, b) }
func (floatArith) pow(a, b float64) float64 { return math.Pow(a, b) }
func (floatArith) neg(a float64) float64    { return -a }
func (floatArith) sqrt(a float64) float64   { return math.Sqrt(a) }
func (floatArith) abs(a float64) float64    { return math.Abs(a) }

// maximum n with finite n!
const maxFloatFactorial = 170

// fails on values with fractional part
func (floatArith) fac(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.Trunc(a) != a {
		panic(newError(ErrDecimalFactorial, "fac(%v)", a))
	}
	if a > maxFloatFactorial {
		return math.Inf(1)
	}

	res := 1.0
	for i := 2.0; i <= a; i++ {
		res *= i
	}
	return res
}
