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
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// integer mode
func TestEvalInt(t *testing.T) {
	check := func(data string, expected int64) {
		res, err := EvalInt(data)
		if assert.NoError(t, err, "data:%s", data) {
			assert.Equal(t, expected, res, "data:%s", data)
		}
	}

	check("2 + 2", 4)
	check("1 + 2 + 3 + 4", 10)
	check("5 - 5", 0)
	check("5 - 4 - 3 - 2", -4)
	check(" 1 + 2 - 3 + 4 - 5 + 6 - 7 - 8 + 9 + 10", 9)
	check("5 * 6", 30)
	check("1 * 2 * 3", 6)
	check("18 / 3", 6)
	check("10 / 5 / 2", 1)
	check("1 * 2 * 3 / 2 * 3 * 4 / 6", 6)
	check("2 ^ 3", 8)
	check("2^3^2", 64) // (2^3)^2
	check("fac(5)", 120)
	check("fac(fac(3))", 720)
	check("5 % 2", 1)
	check("1 + 5 % 2", 2)
	check("2 * 3 % 4", 2)
	check("10 % 4 + 1", 3)
	check("5 + 3 * 2", 11)
	check("3 - (2 - 1)", 2)
	check("2 * (1 - (8 - 6 + (5 - 3) * 2))", -10)
	check("-4", -4)
	check("-(1 + 3)", -4)
	check("--5", 5)
	check("-2^2", 4) // (-2)^2
	check("abs(-5)", 5)
	check("abs(1 - abs(5 - 10))", 4)
	check("fac(3) * 8", 48)
	check("(10 - 5) * 6", 30)
	check("sqrt(1) * ((fac(3) + (15 * (abs(8^2 - fac(2))) + 3^2) - ((1 + 2) * (3 + 4) / (1 + 2))) - (-5 + 2))", 941)

	// truncation
	check("7 / 2", 3)
	check("-7 / 2", -3)
	check("-7 % 3", -1)
	check("7 % -3", 1)
	check("sqrt(10)", 3)
	check("sqrt(16)", 4)
	check("sqrt(4) + 1", 3)

	// factorial of small values
	check("fac(0)", 1)
	check("fac(1)", 1)
	check("fac(-3)", 1)
	check("fac(20)", 2432902008176640000)

	// edge values
	check("2 ^ 0", 1)
	check("0 ^ 0", 1)
	check("9223372036854775807", math.MaxInt64)
	check("-9223372036854775807 - 1", math.MinInt64)
	check("2 ^ 62", 1<<62)

	// trailing lexemes are ignored
	check("2 + 2 9", 4)
	check("(1 + 2) 3 4", 3)
	check("1 )", 1)
}

// floating-point mode
func TestEvalFloat(t *testing.T) {
	check := func(data string, expected float64) {
		res, err := EvalFloat(data)
		if assert.NoError(t, err, "data:%s", data) {
			assert.InDelta(t, expected, res, 1e-9, "data:%s", data)
		}
	}

	check("2 + 2", 4)
	check("5 - 4 - 3 - 2", -4)
	check("1 * 2 * 3 / 2 * 3 * 4 / 6", 6)
	check("7 / 2", 3.5)
	check("7.5 % 2", 1.5)
	check("1 + 5 % 2", 2)
	check("2^3^2", 64)
	check("2 ^ 0.5", math.Sqrt2)
	check("4 ^ -1", 0.25)
	check("sqrt(2)", math.Sqrt2)
	check("abs(-2.5)", 2.5)
	check("fac(5)", 120)
	check("fac(fac(3))", 720)
	check("fac(5.0)", 120)
	check("fac(-1)", 1)
	check("1 + 2.4 * 5 - 1.1 ^ 2", 11.79)
	check(".5 + 5.", 5.5)
	check("sqrt(1) * ((fac(3) + (15 * (abs(8^2 - fac(2))) + 3^2) - ((1 + 2) * (3 + 4) / (1 + 2))) - (-5 + 2))", 941)

	// IEEE special values
	res, err := EvalFloat("1 / 0")
	if assert.NoError(t, err) {
		assert.True(t, math.IsInf(res, 1))
	}
	res, err = EvalFloat("sqrt(-1)")
	if assert.NoError(t, err) {
		assert.True(t, math.IsNaN(res))
	}
	res, err = EvalFloat("fac(171)")
	if assert.NoError(t, err) {
		assert.True(t, math.IsInf(res, 1))
	}
	res, err = EvalFloat("fac(170)")
	if assert.NoError(t, err) {
		assert.False(t, math.IsInf(res, 0))
	}
}

// bad expressions
func TestEvaluateBad(t *testing.T) {
	bad := func(data string, mode Mode, expectedError error, expectedClass string) {
		_, err := Evaluate(data, Options{Mode: mode})
		if assert.Error(t, err, "data:%s", data) {
			assert.True(t, errors.Is(err, expectedError), "unexpected error %s (data:%s)", err, data)
			assert.Equal(t, expectedClass, ClassOf(err), "data:%s", data)
		}
	}

	for _, mode := range []Mode{INTEGER, FLOAT} {
		bad("", mode, ErrUnexpectedToken, CLASS_SYNTAX)
		bad("1 +", mode, ErrUnexpectedToken, CLASS_SYNTAX)
		bad(")", mode, ErrUnexpectedToken, CLASS_SYNTAX)
		bad("* 2", mode, ErrUnexpectedToken, CLASS_SYNTAX)
		bad("(1", mode, ErrUnclosedParen, CLASS_SYNTAX)
		bad("(1 + (2)", mode, ErrUnclosedParen, CLASS_SYNTAX)
		bad("sqrt4", mode, ErrMissingParen, CLASS_SYNTAX)
		bad("sqrt 4", mode, ErrMissingParen, CLASS_SYNTAX)
		bad("sqrt abs(-4)", mode, ErrMissingParen, CLASS_SYNTAX)
		bad("abs -4", mode, ErrMissingParen, CLASS_SYNTAX)
		bad("1.2.3", mode, ErrBadNumber, CLASS_LEX)
		bad(".", mode, ErrBadNumber, CLASS_LEX)
		bad("2 + 2 extra garbage", mode, ErrUnknownOperation, CLASS_LEX)
		bad("2 # 3", mode, ErrUnknownCharacter, CLASS_LEX)
	}

	bad("1.5", INTEGER, ErrBadNumber, CLASS_LEX)
	bad("1 / 0", INTEGER, ErrDivisionByZero, CLASS_DOMAIN)
	bad("1 % 0", INTEGER, ErrDivisionByZero, CLASS_DOMAIN)
	bad("2 ^ -1", INTEGER, ErrNegativeExponent, CLASS_DOMAIN)
	bad("sqrt(-4)", INTEGER, ErrDomain, CLASS_DOMAIN)
	bad("2 ^ 63", INTEGER, ErrOverflow, CLASS_DOMAIN)
	bad("2 ^ 62 * 2", INTEGER, ErrOverflow, CLASS_DOMAIN)
	bad("fac(21)", INTEGER, ErrOverflow, CLASS_DOMAIN)
	bad("9223372036854775807 + 1", INTEGER, ErrOverflow, CLASS_DOMAIN)
	bad("-9223372036854775807 - 2", INTEGER, ErrOverflow, CLASS_DOMAIN)
	bad("9223372036854775808", INTEGER, ErrOverflow, CLASS_DOMAIN)
	bad("abs(-9223372036854775807 - 1)", INTEGER, ErrOverflow, CLASS_DOMAIN)

	bad("fac(3.1)", FLOAT, ErrDecimalFactorial, CLASS_DOMAIN)
	bad("fac(0.5)", FLOAT, ErrDecimalFactorial, CLASS_DOMAIN)
	bad("fac(1 / 0)", FLOAT, ErrDecimalFactorial, CLASS_DOMAIN)

	// error message
	_, err := EvalFloat("fac(3.1)")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "factorial for a decimal value is not supported")
	}
	_, err = EvalInt("(1 + 2")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "expected ), got EOF")
	}
	_, err = EvalInt("abs 4")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "expected (, got 4")
	}

	// unknown mode
	_, err = Evaluate("1", Options{Mode: Mode(5)})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "unknown evaluation mode")
		assert.Empty(t, ClassOf(err))
	}
}

// strict mode
func TestEvaluateStrict(t *testing.T) {
	res, err := Evaluate("2 + 2", Options{Strict: true})
	if assert.NoError(t, err) {
		assert.EqualValues(t, 4, res.Int)
	}

	_, err = Evaluate("2 + 2 9", Options{Strict: true})
	if assert.Error(t, err) {
		assert.True(t, errors.Is(err, ErrTrailingTokens))
		assert.Contains(t, err.Error(), "unexpected 9")
	}

	_, err = Evaluate("1 )", Options{Mode: FLOAT, Strict: true})
	if assert.Error(t, err) {
		assert.True(t, errors.Is(err, ErrTrailingTokens))
	}
}

// same text, same result
func TestEvaluatePure(t *testing.T) {
	a, err1 := EvalInt("1+2")
	b, err2 := EvalInt(" 1 + 2 ")
	c, err3 := EvalInt("1+2")
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NoError(t, err3)
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)

	// concurrent calls do not interfere
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				res, err := EvalInt("abs(1 - abs(5 - 10)) * fac(4)")
				assert.NoError(t, err)
				assert.EqualValues(t, 96, res)
			}
		}()
	}
	wg.Wait()
}

// modes and results
func TestModeAndResult(t *testing.T) {
	check := func(data string, expected Mode) {
		m, err := ParseMode(data)
		if assert.NoError(t, err, "data:%s", data) {
			assert.Equal(t, expected, m)
		}
	}

	check("", INTEGER)
	check("int", INTEGER)
	check(" Integer ", INTEGER)
	check("float", FLOAT)
	check("DOUBLE", FLOAT)

	_, err := ParseMode("complex")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "unknown evaluation mode")
	}

	assert.Equal(t, "int", INTEGER.String())
	assert.Equal(t, "float", FLOAT.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
	assert.Equal(t, "{int}", DefaultOptions().String())
	assert.Equal(t, "{float, strict}", Options{Mode: FLOAT, Strict: true}.String())

	res, err := Evaluate("7 / 2", Options{Mode: INTEGER})
	if assert.NoError(t, err) {
		assert.Equal(t, "3", res.String())
		assert.Equal(t, 3.0, res.Value())
		assert.Equal(t, int64(3), res.Interface())
	}

	res, err = Evaluate("7 / 2", Options{Mode: FLOAT})
	if assert.NoError(t, err) {
		assert.Equal(t, "3.5", res.String())
		assert.Equal(t, 3.5, res.Value())
		assert.Equal(t, 3.5, res.Interface())
	}

	res, err = Evaluate("2 + 2", Options{Mode: FLOAT})
	if assert.NoError(t, err) {
		assert.Equal(t, "4", res.String())
	}
}

// nesting is limited, long flat input is fine
func TestEvaluateDeep(t *testing.T) {
	nested := func(open string, n int) string {
		return strings.Repeat(open, n) + "1" + strings.Repeat(")", n)
	}

	check := func(data string, expected int64) {
		res, err := EvalInt(data)
		if assert.NoError(t, err, "len:%d", len(data)) {
			assert.Equal(t, expected, res, "len:%d", len(data))
		}
	}

	bad := func(data string) {
		for _, mode := range []Mode{INTEGER, FLOAT} {
			_, err := Evaluate(data, Options{Mode: mode})
			if assert.Error(t, err, "len:%d", len(data)) {
				assert.True(t, errors.Is(err, ErrTooDeep), "unexpected error %s", err)
				assert.Equal(t, CLASS_SYNTAX, ClassOf(err))
			}
		}
	}

	check(nested("(", maxDepth), 1)
	check(strings.Repeat("-", maxDepth)+"1", 1)
	check(strings.Repeat("1 + ", 100000)+"1", 100001)
	check(strings.Repeat("2 * ", 60)+"1", 1<<60)

	bad(nested("(", maxDepth+1))
	bad(nested("(", 1000000))
	bad(strings.Repeat("-", maxDepth+1) + "1")
	bad(nested("abs(", maxDepth))
	bad(nested("(1 + ", maxDepth+1))

	// unclosed deep input fails the same way
	bad(strings.Repeat("(", 1000000))
}

// float literals out of range
func TestEvalFloatHuge(t *testing.T) {
	huge := strings.Repeat("9", 400)

	res, err := EvalFloat(huge)
	if assert.NoError(t, err) {
		assert.True(t, math.IsInf(res, 1))
	}
	res, err = EvalFloat("-" + huge)
	if assert.NoError(t, err) {
		assert.True(t, math.IsInf(res, -1))
	}
	res, err = EvalFloat("1 / " + huge)
	if assert.NoError(t, err) {
		assert.Equal(t, 0.0, res)
	}

	_, err = EvalInt(huge)
	if assert.Error(t, err) {
		assert.True(t, errors.Is(err, ErrOverflow))
	}
}
